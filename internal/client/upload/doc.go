// Package upload turns a local file selection plus exam metadata into one
// exam record whose pages live in object storage.
//
// The Pipeline stores pages one at a time in selection order under
// exam-files/{owner}/{exam}/page-{n}.{ext}, collects their public URLs and
// then writes a single exam record through an ExamRecorder. The first
// failure aborts the run and is returned as *StageError. Pages stored before
// the failure stay in place; a new attempt uses a fresh exam id.
//
// Backends: S3Store writes directly to an S3-compatible bucket,
// SignedURLStore goes through the API's presigned-URL endpoints. APIRecorder
// creates the exam over REST, SQLRecorder inserts it directly.
package upload
