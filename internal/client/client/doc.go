// Package client is the authenticated REST client of the ExamHub API.
//
// # Overview
//
// HTTPClient.Request is the single transport primitive. Every call:
//  1. samples the Telegram init payload from a bridge.Source at call time
//     and sends it in the X-Telegram-Auth header;
//  2. always sends Content-Type: application/json; caller-supplied headers
//     are added but can never replace these two;
//  3. decodes a 2xx JSON body into the caller's value as-is, without schema
//     validation.
//
// The domain wrappers (profile, follow, universities, courses, exams, likes,
// uploads, reports, health) are parameter shaping over Request and are
// collected in the API interface so services and the CLI can be tested with
// fakes.
//
// # Error Handling
//
// A non-2xx response yields *RequestError whose message is the server's
// "error" field or "HTTP {status}" when the body carries none. 401 and 403
// responses also match ErrUnauthorized with errors.Is. Transport failures
// match ErrUnavailable. Nothing is retried.
//
// See Also
//
//   - Transport: HTTPClient, RequestOptions
//   - Wrappers:  API
//   - Errors:    RequestError, ErrUnauthorized, ErrUnavailable
package client
