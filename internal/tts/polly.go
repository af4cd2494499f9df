package tts

import (
	"context"
	"errors"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"

	"github.com/abhisek/gurukul/internal/tutor"
)

// PollyConfig holds Amazon Polly-specific configuration.
type PollyConfig struct {
	Region string // Default: "ap-south-1"
	Voice  string // Default: "Kajal" (neural, en-IN/hi-IN bilingual)
}

// pollyClient is the slice of the Polly API we use.
type pollyClient interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// PollySynthesizer implements Synthesizer against Amazon Polly.
type PollySynthesizer struct {
	cfg    PollyConfig
	client pollyClient
}

// NewPollySynthesizer creates a Polly synthesizer using the default AWS
// credential chain (env, shared config, instance role).
func NewPollySynthesizer(ctx context.Context, cfg PollyConfig) (*PollySynthesizer, error) {
	if cfg.Region == "" {
		cfg.Region = "ap-south-1"
	}
	if cfg.Voice == "" {
		cfg.Voice = "Kajal"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &PollySynthesizer{
		cfg:    cfg,
		client: polly.NewFromConfig(awsCfg),
	}, nil
}

// newPollySynthesizerWithClient is used by tests to inject a fake client.
func newPollySynthesizerWithClient(cfg PollyConfig, client pollyClient) *PollySynthesizer {
	if cfg.Voice == "" {
		cfg.Voice = "Kajal"
	}
	return &PollySynthesizer{cfg: cfg, client: client}
}

func (p *PollySynthesizer) Synthesize(ctx context.Context, text string, opts SpeechOptions) (*Speech, error) {
	voice := types.VoiceId(p.cfg.Voice)
	if opts.VoiceID != "" {
		voice = types.VoiceId(opts.VoiceID)
	}

	lang := types.LanguageCodeEnIn
	if opts.Language == tutor.LanguageHindi {
		lang = types.LanguageCodeHiIn
	}

	out, err := p.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         &text,
		VoiceId:      voice,
		OutputFormat: types.OutputFormatMp3,
		Engine:       types.EngineNeural,
		LanguageCode: lang,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, &ErrSynthesisFailed{
				Provider: "polly",
				Err:      fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()),
			}
		}
		return nil, &ErrSynthesisFailed{Provider: "polly", Err: err}
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, &ErrSynthesisFailed{Provider: "polly", Err: fmt.Errorf("read audio stream: %w", err)}
	}

	return &Speech{Audio: audio, MimeType: "audio/mpeg"}, nil
}
