package common

// InitDataHeaderName carries the raw Telegram WebApp init payload on every
// authenticated request.
const InitDataHeaderName = "X-Telegram-Auth"

// ExamFilesPrefix is the storage namespace of uploaded exam pages.
const ExamFilesPrefix = "exam-files"

// AllowedExtensions lists the file types accepted as exam pages.
var AllowedExtensions = []string{"pdf", "jpg", "jpeg", "png"}
