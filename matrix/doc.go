// Package matrix offers the dense storage layer used by the fuzzy partition engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (At, Col, Row) and a NaN/Inf policy applied on ingestion.
//   - Row-major and column-major ingestion/export (NewDenseFromRows,
//     NewDenseFromCols, RawRows, Columns), always deep-copying.
//   - Column-wise and global reductions (ColMax, ColMin, ColSums,
//     ColCountAtLeast, MinMax) backed by gonum/floats.
//   - Validators (ValidateNotNil, ValidateSameShape) and a sentinel error set
//     matched with errors.Is.
//
// A Dense is immutable once built, so concurrent reads need no locking.
package matrix
