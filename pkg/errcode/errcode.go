package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnknownDriverError
	DBTableCheckError
	DBEmptyDatabaseError
	DBTransactionError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaExportError

	// Label codec errors
	CodecInvalidFlagError
	CodecOverflowError
	CodecInvalidIdentifierError
	CodecInvalidLengthError

	// Sources errors
	SourcesLabelsError
	SourcesSubscriptionsError
	SourcesDatasetError
	SourcesRecordError

	// Populate errors
	PopulateLabelsError
	PopulateSubscriptionsError
	PopulatePublicationsError
	PopulateUnresolvedGroupError
	PopulateDanglingLabelError
	PopulateDecodeError

	// Sample errors
	SampleInvalidLimitError
	SampleQueryError
	SampleSubscriptionsError

	// Optimize errors
	OptimizeIndexError
	OptimizeVacuumError
)
