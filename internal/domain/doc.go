// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (brackets, tables, results, history records) and
// contracts (interfaces) only.
package domain
