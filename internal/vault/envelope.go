package vault

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/cryptox"
)

const (
	// MaxEnvelopeSize bounds the vault file read into memory.
	MaxEnvelopeSize = 4 << 20
	// maxFields bounds the number of top-level keys accepted in an envelope.
	maxFields = 16
)

// Envelope is the persisted form of the vault:
//
//	{"Salt":"<base64>","Iv":"<base64>","Data":"<base64>"}
//
// Unknown top-level fields are ignored when reading.
type Envelope struct {
	Salt string `json:"Salt"`
	Iv   string `json:"Iv"`
	Data string `json:"Data"`
}

// decoded holds the raw bytes of a validated envelope.
type decoded struct {
	salt, iv, data []byte
}

// ParseEnvelope parses and validates the text of a vault file.
// Every failure is reported as common.ErrMalformedEnvelope.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	if len(raw) > MaxEnvelopeSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrMalformedEnvelope, MaxEnvelopeSize)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEnvelope, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not an object", common.ErrMalformedEnvelope)
	}
	if len(fields) > maxFields {
		return nil, fmt.Errorf("%w: too many fields", common.ErrMalformedEnvelope)
	}

	var env Envelope
	for name, dst := range map[string]*string{"Salt": &env.Salt, "Iv": &env.Iv, "Data": &env.Data} {
		v, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", common.ErrMalformedEnvelope, name)
		}
		if !bytes.HasPrefix(bytes.TrimSpace(v), []byte(`"`)) {
			return nil, fmt.Errorf("%w: %s is not a string", common.ErrMalformedEnvelope, name)
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrMalformedEnvelope, name, err)
		}
	}

	if _, err := env.decode(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Marshal returns the JSON text written to disk.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Envelope) decode() (*decoded, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil envelope", common.ErrMalformedEnvelope)
	}

	salt, err := decodeField("Salt", e.Salt)
	if err != nil {
		return nil, err
	}
	iv, err := decodeField("Iv", e.Iv)
	if err != nil {
		return nil, err
	}
	data, err := decodeField("Data", e.Data)
	if err != nil {
		return nil, err
	}

	if len(iv) != cryptox.IVSize {
		return nil, fmt.Errorf("%w: Iv must be %d bytes", common.ErrMalformedEnvelope, cryptox.IVSize)
	}
	if len(data)%cryptox.IVSize != 0 {
		return nil, fmt.Errorf("%w: Data is not block aligned", common.ErrMalformedEnvelope)
	}

	return &decoded{salt: salt, iv: iv, data: data}, nil
}

func decodeField(name, s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty %s", common.ErrMalformedEnvelope, name)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrMalformedEnvelope, name, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty %s", common.ErrMalformedEnvelope, name)
	}
	return b, nil
}
