package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrEmptyManifesto  = fmt.Errorf("manifesto contains no paragraphs")
	ErrEmptyWords      = fmt.Errorf("no censored words have been found")
	ErrOnlyPlainFiles  = fmt.Errorf("censored directory contains directories")
	ErrEmptyGeneration = fmt.Errorf("backend returned empty text")
)
