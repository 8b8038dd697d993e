// Package letters enumerates the candidate pictographs of Type-1 letters.
//
// A Type-1 letter is a dual-shift letter: both hands perform a shift (pro
// or anti) on the same beat. Each letter belongs to one position system
// (alpha_to_alpha, beta_to_alpha, beta_to_beta, alpha_to_beta,
// gamma_to_gamma) and is described by a data-only LetterConfig: a start
// position, the allowed (blue, red) motion-type pairs and the allowed
// (blue, red) prop-rotation pairs. Type-1 rotation pairs always match
// (cw/cw, ccw/ccw), so the motion pair decides whether the hands travel the
// same way or opposite ways.
//
// The package offers the following key components:
//
//   - Tables: the built-in Type-1 letter tables (tables_type1.go), loadable
//     and overridable from YAML (LoadTables, WithTables).
//   - Generator: one generator per position system, configured by a Config
//     struct rather than a type hierarchy. Generate enumerates
//     motion pairs × rotation pairs, builds each pattern, validates it and
//     memoizes the result.
//   - Cache: explicit, injectable memo keyed by generator, letter, grid mode
//     and prop type. Safe for concurrent use; concurrent misses for one key
//     compute once.
//   - Registry: letter -> generator dispatch table across all systems, with
//     GenerateAll for concurrent batch generation.
//
// Guarantees:
//
//   - Determinism: same tables, options and letter => identical pictographs,
//     including their name-based IDs.
//   - Fail-fast configuration: a letter whose pattern fails validation
//     returns ErrInvalidPattern naming the letter; other letters are not
//     affected.
//   - Option constructors panic on meaningless values; operations never do.
//
// Errors:
//
//   - ErrUnsupportedLetter: the letter is not in the generator's table.
//   - ErrInvalidPattern:    a constructed pattern failed validation.
//   - ErrBadTable:          a letter table is malformed.
//   - ErrUnknownPositionSystem: a Config names an unknown position system.
package letters
