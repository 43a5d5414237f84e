// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package perm

// GenerateGroup returns the subgroup generated by generators: the smallest
// (multiplicity-free) set of permutations containing the identity and
// generators, and closed under composition. It computes this as a
// straightforward fixpoint closure (repeatedly composing the current set
// with each generator and taking the union, until a round adds nothing
// new) rather than a strong-generating-set algorithm; the group is always
// finite (it divides n!), so the loop always terminates.
func (f *Factory) GenerateGroup(generators []Perm) (Perm, error) {
	current := f.Identity()
	for _, g := range generators {
		current = f.Union(current, g)
	}
	for {
		next := current
		for _, g := range generators {
			composed, err := f.Compose(next, g)
			if err != nil {
				return Perm{}, err
			}
			// add each composed permutation once, whatever its multiplicity
			err = f.dd.Allsat(composed.edge, func(prof []int, _ int) error {
				atoms := f.profileToAtoms(prof)
				if ok, err := f.Contains(next, atoms); err != nil || ok {
					return err
				}
				cube, err := f.atomsToCube(atoms)
				next = f.Union(next, Perm{edge: cube})
				return err
			})
			if err != nil {
				return Perm{}, err
			}
		}
		if f.Equal(next, current) {
			return current, nil
		}
		current = next
	}
}
