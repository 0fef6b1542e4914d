// Package httpapi serves the tax engine as JSON over HTTP.
//
// HTTP API
//
//	GET /years
//	    List supported fiscal years in table order: {"years": [...]}.
//
//	GET /years/{year}/brackets
//	    Return the bracket table for {year}; 404 if the year is unknown.
//
//	POST /calculate {"year": "2023-2024", "income": "50000"}
//	    Validate both fields with the same rules as the interactive prompt and
//	    return the result. Amounts are decimal strings. A rejected field yields
//	    400 with {"error": "<message>", "field": "<year|income>"}.
//
// Behaviour
//
//   - The engine is immutable, so one instance serves all requests.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
package httpapi
