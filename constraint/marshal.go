package constraint

import (
	"github.com/fxamacker/cbor/v2"
)

// ToBytes serializes the declared structure to a byte slice using a
// deterministic encoding; two systems declaring the same structure in the
// same order serialize to identical bytes.
func (s *System) ToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(s)
}

// FromBytes deserializes the structure from a byte slice.
func (s *System) FromBytes(data []byte) error {
	dec, err := cbor.DecOptions{
		MaxArrayElements: 134217728,
		MaxMapPairs:      134217728,
	}.DecMode()
	if err != nil {
		return err
	}
	return dec.Unmarshal(data, s)
}
