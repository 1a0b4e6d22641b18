package mock

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fingerprint serializes everything witness-independent about the pass: the
// declared structure, the selector row sets, the wiring (copies, instance
// bindings, regions, assignment shape) and the table contents. The
// structural and proving passes of the same circuit must produce identical
// fingerprints; witness values never enter the encoding.
//
// We prepare and write 3 distinct blocks of data, in the same deterministic
// encoding used for the constraint system itself.
func (p *Prover) Fingerprint() ([]byte, error) {
	var structure, selectors, wiring []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		structure, err = p.cs.ToBytes()
		return err
	})
	g.Go(func() error {
		var err error
		selectors, err = p.selectorsToBytes()
		return err
	})
	g.Go(func() error {
		var err error
		wiring, err = p.wiringToBytes()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// header: 3 section lengths
	buf := make([]byte, 0, 24+len(structure)+len(selectors)+len(wiring))
	var h [24]byte
	binary.BigEndian.PutUint64(h[0:8], uint64(len(structure)))
	binary.BigEndian.PutUint64(h[8:16], uint64(len(selectors)))
	binary.BigEndian.PutUint64(h[16:24], uint64(len(wiring)))
	buf = append(buf, h[:]...)
	buf = append(buf, structure...)
	buf = append(buf, selectors...)
	buf = append(buf, wiring...)
	return buf, nil
}

func (p *Prover) selectorsToBytes() ([]byte, error) {
	rows := make([][]byte, len(p.selectors))
	for i, s := range p.selectors {
		b, err := s.MarshalBinary()
		if err != nil {
			return nil, err
		}
		rows[i] = b
	}
	return detMarshal(rows)
}

func (p *Prover) wiringToBytes() ([]byte, error) {
	// which cells are assigned is structure; their values are not
	assigned := make([][]byte, len(p.advice))
	for i, col := range p.advice {
		bs := bitset.New(uint(p.n))
		for row, s := range col {
			if s.assigned {
				bs.Set(uint(row))
			}
		}
		b, err := bs.MarshalBinary()
		if err != nil {
			return nil, err
		}
		assigned[i] = b
	}

	w := struct {
		K        int
		Copies   []copyPair
		Bindings []instanceBinding
		Regions  []RegionLayout
		Assigned [][]byte
		Tables   [][]fr.Element
	}{
		K:        p.k,
		Copies:   p.copies,
		Bindings: p.bindings,
		Regions:  p.regions,
		Assigned: assigned,
		Tables:   p.tables,
	}
	return detMarshal(&w)
}

func detMarshal(v interface{}) ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(v)
}
