package die

// StandardCatalog holds the 25 canonical dies plus any appended user dies.
// IDs 1..25 are the standard dies; appended general dies receive IDs
// starting at FirstGeneralID (26).
type StandardCatalog struct {
	bySize map[int]map[Type]*CuttingDie
	byID   map[int]*CuttingDie
	nextID int
}

// FirstGeneralID is the first ID available to user-supplied dies.
const FirstGeneralID = 26

// sizeType identifies a (size, type) pair for deterministic ordering.
type sizeType struct {
	size int
	typ  Type
}

// BuildStandardCatalog constructs the 25 standard dies. ID 1 is the unit
// (2^0) Full die; IDs 2..25 are assigned in ascending (size, type)
// lexicographic order, type ordered Full < EvenRow < EvenColumn.
//
// Complexity: O(MaxSize^2) time and memory, dominated by the largest
// stencils.
func BuildStandardCatalog() (*StandardCatalog, error) {
	cat := &StandardCatalog{
		bySize: make(map[int]map[Type]*CuttingDie),
		byID:   make(map[int]*CuttingDie),
		nextID: FirstGeneralID,
	}

	var combos []sizeType
	for exp := MinPow2Exp; exp <= MaxPow2Exp; exp++ {
		size := 1 << exp
		if exp == MinPow2Exp {
			combos = append(combos, sizeType{size, Full})

			continue
		}
		combos = append(combos, sizeType{size, Full}, sizeType{size, EvenRow}, sizeType{size, EvenColumn})
	}

	id := 1
	for _, c := range combos {
		d, err := NewStandardDie(id, c.size, c.typ)
		if err != nil {
			return nil, err
		}
		if cat.bySize[c.size] == nil {
			cat.bySize[c.size] = make(map[Type]*CuttingDie)
		}
		cat.bySize[c.size][c.typ] = d
		cat.byID[id] = d
		id++
	}

	return cat, nil
}

// Get returns the unique standard die of the given size and type.
func (c *StandardCatalog) Get(size int, t Type) (*CuttingDie, error) {
	byType, ok := c.bySize[size]
	if !ok {
		return nil, ErrDieNotFound
	}
	d, ok := byType[t]
	if !ok {
		return nil, ErrDieNotFound
	}

	return d, nil
}

// FullMax returns the largest Full die (size MaxSize).
func (c *StandardCatalog) FullMax() *CuttingDie {
	d, err := c.Get(MaxSize, Full)
	if err != nil {
		// BuildStandardCatalog always constructs this die; reaching here
		// indicates a caller holding a zero-value StandardCatalog.
		panic("die: FullMax called on a catalog missing the MaxSize Full die")
	}

	return d
}

// AddGeneral appends a user-supplied die, assigning it the next available
// ID (>= FirstGeneralID). The die's own ID field is overwritten.
func (c *StandardCatalog) AddGeneral(d *CuttingDie) *CuttingDie {
	d.ID = c.nextID
	c.nextID++
	c.byID[d.ID] = d

	return d
}

// ByID returns the die with the given ID, or ErrDieNotFound.
func (c *StandardCatalog) ByID(id int) (*CuttingDie, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, ErrDieNotFound
	}

	return d, nil
}
