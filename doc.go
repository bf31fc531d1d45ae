// Package hrpatterns collects three small design-pattern demonstrations built
// around an HR department.
//
//   - employee: a factory that builds an employee kind from a string tag
//     (backed by the generic tag table in registry)
//   - notice: a notice board that broadcasts each message to its listeners in
//     subscription order
//   - hr: a process-wide HR manager behind a once-only accessor
//
// The components are independent. Each has a runnable program under
// examples/*, and cmd/hrdemo runs them all from one binary, wired explicitly
// through the helpers in di (see app for the composition root).
//
// Supporting packages:
//   - config: koanf-based settings (defaults, YAML file, HRDEMO_* env)
//   - logging: slog setup
package hrpatterns
