package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/phishguard/internal/classifier"
	"github.com/dmitrijs2005/phishguard/internal/htmlclean"
	"github.com/dmitrijs2005/phishguard/internal/logging"
)

// Kind selects a detection mode.
type Kind string

const (
	KindURL     Kind = "url"
	KindEmail   Kind = "email"
	KindWebsite Kind = "website"
)

// Kinds lists the supported modes in display order.
var Kinds = []Kind{KindURL, KindEmail, KindWebsite}

type mode struct {
	maxLength  int
	clean      bool
	phishing   string
	legitimate string
}

var modes = map[Kind]mode{
	KindURL:     {maxLength: 128, phishing: "Phishing URL", legitimate: "Legitimate URL"},
	KindEmail:   {maxLength: 256, phishing: "Phishing Email", legitimate: "Safe Email"},
	KindWebsite: {maxLength: 512, clean: true, phishing: "Phishing Website", legitimate: "Legitimate Website"},
}

// ParseKind accepts a mode name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modes[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// MaxLength returns the token limit sent to the model for k.
func (k Kind) MaxLength() int { return modes[k].maxLength }

// Verdict is the outcome of one detection.
type Verdict struct {
	Kind     Kind
	Phishing bool
	Score    float64
}

// Label is the user-facing verdict, e.g. "Phishing URL" or "Safe Email".
func (v Verdict) Label() string {
	m := modes[v.Kind]
	if v.Phishing {
		return m.phishing
	}
	return m.legitimate
}

func (v Verdict) String() string {
	return fmt.Sprintf("%s (confidence %.2f)", v.Label(), v.Score)
}

// ModelNames maps each mode to the model served by the classifier.
type ModelNames struct {
	URL     string
	Email   string
	Website string
}

func (n ModelNames) name(k Kind) string {
	switch k {
	case KindEmail:
		return n.Email
	case KindWebsite:
		return n.Website
	default:
		return n.URL
	}
}

// DetectionService runs user input through the classifier.
type DetectionService struct {
	classifier classifier.Classifier
	models     ModelNames
	logger     logging.Logger
}

func NewDetectionService(c classifier.Classifier, models ModelNames, logger logging.Logger) *DetectionService {
	return &DetectionService{classifier: c, models: models, logger: logger}
}

// Detect classifies input in mode k. Website input is HTML and is reduced to
// its visible text first. Blank input, before or after cleaning, returns
// ErrEmptyInput without calling the model.
func (s *DetectionService) Detect(ctx context.Context, k Kind, input string) (*Verdict, error) {
	m, ok := modes[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}

	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyInput
	}

	if m.clean {
		cleaned, err := htmlclean.ToText(text)
		if err != nil {
			s.logger.Warn(ctx, "error cleaning html", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrHTMLProcessing, err)
		}
		if cleaned == "" {
			return nil, ErrEmptyInput
		}
		text = cleaned
	}

	model := s.models.name(k)
	p, err := s.classifier.Predict(ctx, model, text, m.maxLength)
	if err != nil {
		s.logger.Error(ctx, "prediction failed", "kind", string(k), "model", model, "error", err)
		if errors.Is(err, classifier.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrModelFailure, err)
	}

	v := &Verdict{Kind: k, Phishing: p.Phishing(), Score: p.Score}
	s.logger.Info(ctx, "detection finished", "kind", string(k), "phishing", v.Phishing, "score", v.Score)
	return v, nil
}
