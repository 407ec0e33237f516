package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadConfigError

	// Logging errors
	CreateLogFileError

	// Catalog errors
	ReadCatalogError
	SQLiteCatalogError
	GenerateCatalogError

	// Optimizer errors
	UnknownAlgorithmError
	InvalidLayoutError
	CanceledError
	NotOptimizedError

	// Export errors
	WriteLayoutError
	WriteReportError
	UnknownReportFormatError
)
