package camera

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// parametersJSON is the persisted form of a parameter block: the nine named
// fields in storage order.
type parametersJSON[T Scalar] struct {
	Fx      T `json:"fx"`
	Fy      T `json:"fy"`
	U0      T `json:"u0"`
	V0      T `json:"v0"`
	Epsilon T `json:"epsilon"`
	Width   T `json:"width"`
	Height  T `json:"height"`
	R1      T `json:"r1"`
	R2      T `json:"r2"`
}

// MarshalJSON implements json.Marshaler, emitting the nine named fields in
// storage order.
func (p *Parameters[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(parametersJSON[T]{
		Fx:      p.Fx(),
		Fy:      p.Fy(),
		U0:      p.U0(),
		V0:      p.V0(),
		Epsilon: p.Epsilon(),
		Width:   p.Width(),
		Height:  p.Height(),
		R1:      p.R1(),
		R2:      p.R2(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. Unknown keys are ignored and
// absent fields load as zero.
func (p *Parameters[T]) UnmarshalJSON(b []byte) error {
	var pj parametersJSON[T]
	if err := json.Unmarshal(b, &pj); err != nil {
		return err
	}
	p.data = [NumParameters]T{pj.Fx, pj.Fy, pj.U0, pj.V0, pj.Epsilon, pj.Width, pj.Height, pj.R1, pj.R2}
	return nil
}

// NewParametersFromJSONFile takes in a file path to a JSON and turns it into
// an owning parameter block.
func NewParametersFromJSONFile(jsonPath string) (*Parameters[float64], error) {
	//nolint:gosec
	jsonFile, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening JSON file")
	}
	defer utils.UncheckedErrorFunc(jsonFile.Close)
	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON data")
	}
	params := &Parameters[float64]{}
	if err := json.Unmarshal(byteValue, params); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON string")
	}
	return params, nil
}

// WriteToJSONFile persists any parameter reader to a JSON file in the
// standard nine-field form.
func WriteToJSONFile[T Scalar](m Reader[T], jsonPath string) error {
	b, err := json.MarshalIndent(CloneParameters(m), "", " ")
	if err != nil {
		return errors.Wrap(err, "error encoding JSON")
	}
	return os.WriteFile(jsonPath, b, 0o644)
}
