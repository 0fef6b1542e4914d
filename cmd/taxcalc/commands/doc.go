// Package commands defines the taxcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Prompt for a fiscal year and income, then print the tax summary
//   - calc     Calculate from --year and --income without prompting
//   - years    List supported fiscal years, or one year's bracket table
//   - history  Show recorded calculations
//
// # Implementation
//
// The root command resolves configuration (flags, TAXCALC_* environment,
// config.yaml) and builds the dependency graph (bracket schedule, engine,
// console collaborators, optional history store) before any subcommand runs,
// so handlers share one app context.
package commands
