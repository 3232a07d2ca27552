package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TranscriptSegment is one turn of transcribed speech. The time, speaker and
// text keys must all be present in JSON input; their values may be empty.
type TranscriptSegment struct {
	Time    string `json:"time" example:"00:01:23"`
	Speaker string `json:"speaker" example:"Gydytojas"`
	Text    string `json:"text" example:"Kuo skundžiatės?"`

	missing []string
}

// UnmarshalJSON decodes a segment and records which required keys were absent
// or null, so Validate can report them.
func (s *TranscriptSegment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Time    *string `json:"time"`
		Speaker *string `json:"speaker"`
		Text    *string `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = TranscriptSegment{}
	for _, f := range []struct {
		key string
		src *string
		dst *string
	}{
		{"time", raw.Time, &s.Time},
		{"speaker", raw.Speaker, &s.Speaker},
		{"text", raw.Text, &s.Text},
	} {
		if f.src == nil {
			s.missing = append(s.missing, f.key)
			continue
		}
		*f.dst = *f.src
	}
	return nil
}

// TranscriptInput is the request payload for an extraction.
type TranscriptInput struct {
	Meta       map[string]any      `json:"meta,omitempty"`
	Transcript []TranscriptSegment `json:"transcript"`
}

// Validate checks that the transcript has at least one segment and that every
// decoded segment carried its time, speaker and text keys. Empty values are
// accepted. Errors wrap ErrInvalidTranscript.
func (in *TranscriptInput) Validate() error {
	if in == nil || len(in.Transcript) == 0 {
		return fmt.Errorf("%w: transcript must contain at least one segment", ErrInvalidTranscript)
	}
	for i, seg := range in.Transcript {
		if len(seg.missing) > 0 {
			return fmt.Errorf("%w: segment %d is missing %s", ErrInvalidTranscript, i, strings.Join(seg.missing, ", "))
		}
	}
	return nil
}
