// Package die defines the cutting-die stencil type and the 25-die standard
// catalog that every solving session starts from.
//
// What:
//
//   - CuttingDie is an immutable w x h boolean stencil with a numeric ID and
//     an optional standard Type (Full, EvenRow, EvenColumn).
//   - StandardCatalog builds the 25 canonical dies: for each of the nine
//     power-of-two sizes 2^0..2^8, the unit size has only Full, and every
//     larger size has all three types, so 1 + 3*8 = 25 dies total.
//   - Catalog also accepts user-supplied general dies, which receive IDs
//     starting at 26.
//
// Why:
//
//   - The standard catalog is what the coarse/fine aligners and the
//     edge-swap family build every operation from; having it assembled
//     once, with stable IDs, keeps the rest of the solver free of stencil
//     construction logic.
//
// Complexity:
//
//   - NewStandardDie: O(size^2). BuildStandardCatalog: O(MaxSize^2) total
//     (dominated by the largest size's three stencils).
//   - Get/FullMax: O(1) after construction.
//
// Errors:
//
//   - ErrInvalidSize: a non-positive or non-power-of-two size was requested.
//   - ErrUnknownStandardDieType: catalog constructor asked for a type not
//     in {Full, EvenRow, EvenColumn}.
//   - ErrDieNotFound: Get asked for a (size, type) combination the catalog
//     does not contain.
package die
