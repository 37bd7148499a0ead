// Package resolver turns the three configuration surfaces of the migration
// tool into typed [models.Configuration] values.
//
// Environment variables and command-line overrides are flat: their keys are
// normalized into canonical dotted paths, legacy connection keys are moved
// under the default environment, collisions are arbitrated with a warning,
// and the surviving map is unflattened into a tree and bound to the model.
//
// Configuration files are structured already. Each one is parsed by
// extension (TOML, YAML or JSON), bound on its own and folded in order over
// [models.Defaults].
//
// The [Resolver] builder combines both pipelines with the precedence
// defaults < files < environment < command line:
//
//	cfg, err := resolver.New(log).
//		WithFiles([]string{"flyway.toml"}, workDir).
//		WithEnvironment(os.Environ()).
//		WithCommandLine(overrides).
//		Build()
package resolver
