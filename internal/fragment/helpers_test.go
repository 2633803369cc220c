package fragment_test

import (
	"testing"

	"github.com/spectrakit/fragmentor/internal/chem"
)

// buildMolecule assembles a molecule from element symbols and bonds,
// failing the test on invalid input.
func buildMolecule(t *testing.T, elements []string, bonds []chem.Bond) *chem.Molecule {
	t.Helper()

	m := chem.NewMolecule()
	for _, el := range elements {
		m.AddAtom(el)
	}

	for _, b := range bonds {
		if err := m.AddBond(b); err != nil {
			t.Fatalf("adding bond %d-%d: %v", b.From, b.To, err)
		}
	}

	return m
}

// single is a convenience constructor for an order-1 bond.
func single(from, to int) chem.Bond {
	return chem.Bond{From: from, To: to, Order: 1}
}

// ringBond is a convenience constructor for an order-1 ring bond.
func ringBond(from, to int) chem.Bond {
	return chem.Bond{From: from, To: to, Order: 1, InRing: true}
}

// triangle returns the 3-carbon ring A-B, A-C, B-C.
func triangle(t *testing.T) *chem.Molecule {
	t.Helper()

	return buildMolecule(t, []string{"C", "C", "C"}, []chem.Bond{
		ringBond(0, 1), ringBond(0, 2), ringBond(1, 2),
	})
}

// carbonChain returns a linear chain of n carbons.
func carbonChain(t *testing.T, n int) *chem.Molecule {
	t.Helper()

	elements := make([]string, n)
	for i := range elements {
		elements[i] = "C"
	}

	bonds := make([]chem.Bond, 0, n-1)
	for i := 0; i < n-1; i++ {
		bonds = append(bonds, single(i, i+1))
	}

	return buildMolecule(t, elements, bonds)
}

// benzene returns a 6-carbon aromatic ring.
func benzene(t *testing.T) *chem.Molecule {
	t.Helper()

	elements := []string{"C", "C", "C", "C", "C", "C"}

	bonds := make([]chem.Bond, 0, 6)
	for i := 0; i < 6; i++ {
		bonds = append(bonds, chem.Bond{From: i, To: (i + 1) % 6, Order: 1, InRing: true, Aromatic: true})
	}

	return buildMolecule(t, elements, bonds)
}
