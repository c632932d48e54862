package ingestors

import (
	"fmt"

	"log-catalog/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"
	codeBatchTooLarge         = "ING_1002"
	codeLogFileNotFound       = "ING_1003"

	codeInternalLogSourceFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadyProcessed returns an error when a batch with the same idempotency key was already ingested.
func errBatchAlreadyProcessed(idempotencyKey string) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "log batch already processed",
		fmt.Errorf("idempotency key %q already used", idempotencyKey))
}

func errBatchTooLarge(maxBytes int) *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codeBatchTooLarge, fmt.Sprintf("batch too large: must be <= %d bytes", maxBytes), nil)
}

func errLogFileNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLogFileNotFound, "log file not found", cause)
}

// errInternalLogSourceFailed returns an error when reading from the log source fails.
func errInternalLogSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogSourceFailed, fmt.Errorf("logSourceFailed: %w", cause))
}
