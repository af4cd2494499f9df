// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/gurukul/ent/llmrequestevent"
	"github.com/abhisek/gurukul/ent/renderjob"
	"github.com/abhisek/gurukul/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	renderjobFields := schema.RenderJob{}.Fields()
	_ = renderjobFields
	// renderjobDescResultURL is the schema descriptor for result_url field.
	renderjobDescResultURL := renderjobFields[5].Descriptor()
	// renderjob.DefaultResultURL holds the default value on creation for the result_url field.
	renderjob.DefaultResultURL = renderjobDescResultURL.Default.(string)
	// renderjobDescErrorDetail is the schema descriptor for error_detail field.
	renderjobDescErrorDetail := renderjobFields[6].Descriptor()
	// renderjob.DefaultErrorDetail holds the default value on creation for the error_detail field.
	renderjob.DefaultErrorDetail = renderjobDescErrorDetail.Default.(string)
	// renderjobDescCreatedAt is the schema descriptor for created_at field.
	renderjobDescCreatedAt := renderjobFields[7].Descriptor()
	// renderjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	renderjob.DefaultCreatedAt = renderjobDescCreatedAt.Default.(func() time.Time)
	// renderjobDescUpdatedAt is the schema descriptor for updated_at field.
	renderjobDescUpdatedAt := renderjobFields[8].Descriptor()
	// renderjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	renderjob.DefaultUpdatedAt = renderjobDescUpdatedAt.Default.(func() time.Time)
	// renderjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	renderjob.UpdateDefaultUpdatedAt = renderjobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
