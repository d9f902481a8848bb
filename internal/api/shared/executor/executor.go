package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-identity/internal/api/shared/constants"
	"github.com/feral-file/ff-identity/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-identity/internal/api/shared/errors"
	"github.com/feral-file/ff-identity/internal/binding"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/did"
	"github.com/feral-file/ff-identity/internal/domain"
	"github.com/feral-file/ff-identity/internal/logger"
	"github.com/feral-file/ff-identity/internal/metrics"
	"github.com/feral-file/ff-identity/internal/registry"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// NormalizeDID normalizes a DID and derives its hash and address
	NormalizeDID(ctx context.Context, d string) (*dto.DIDResponse, error)

	// ValidateDIDAddress checks that address is the DID address of d
	ValidateDIDAddress(ctx context.Context, d string, address string) *dto.ValidateDIDAddressResponse

	// NormalizeAccount normalizes one CAIP-10 account
	NormalizeAccount(ctx context.Context, account string) *dto.AccountResponse

	// NormalizeAccounts normalizes accounts concurrently and returns results in input order
	NormalizeAccounts(ctx context.Context, accounts []string) (*dto.BatchNormalizeAccountsResponse, error)

	// ListChains lists registry chains, filtered by query when it is not empty
	ListChains(ctx context.Context, query string, limit int) (*dto.ChainListResponse, error)

	// GetChain returns a registry chain by CAIP-2 id
	GetChain(ctx context.Context, chain string) (*dto.ChainResponse, error)

	// VerifyBinding verifies an ownership proof binding a DID to an account
	VerifyBinding(ctx context.Context, req dto.VerifyBindingRequest) (*dto.VerifyBindingResponse, error)

	// Close stops the worker pool
	Close()
}

// Config holds executor limits
type Config struct {
	WorkerPoolSize int
	MaxBatchItems  int
}

type executor struct {
	config   Config
	chains   registry.ChainRegistry
	denylist registry.DenylistRegistry
	binder   binding.Binder
	metrics  *metrics.Metrics
	pool     pond.ResultPool[dto.AccountResponse]

	closeOnce sync.Once
}

// NewExecutor creates an executor. denylist and m may be nil.
func NewExecutor(cfg Config, chains registry.ChainRegistry, denylist registry.DenylistRegistry, binder binding.Binder, m *metrics.Metrics) Executor {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 1
	}

	return &executor{
		config:   cfg,
		chains:   chains,
		denylist: denylist,
		binder:   binder,
		metrics:  m,
		pool:     pond.NewResultPool[dto.AccountResponse](cfg.WorkerPoolSize),
	}
}

func (e *executor) NormalizeDID(ctx context.Context, d string) (*dto.DIDResponse, error) {
	normalized, err := did.Normalize(d)
	if err != nil {
		e.metrics.IncrementNormalization("did", "invalid")
		return nil, apierrors.NewValidationError(err.Error())
	}

	hash, err := did.ComputeDIDHash(normalized)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to hash DID", err.Error())
	}
	address, err := did.ComputeDIDAddress(hash)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to derive DID address", err.Error())
	}

	e.metrics.IncrementNormalization("did", "ok")
	return &dto.DIDResponse{
		DID:        normalized,
		Method:     did.ExtractMethod(normalized),
		Identifier: did.ExtractIdentifier(normalized),
		Hash:       hash,
		Address:    address,
	}, nil
}

func (e *executor) ValidateDIDAddress(ctx context.Context, d string, address string) *dto.ValidateDIDAddressResponse {
	normalized := did.MustNormalize(d)
	return &dto.ValidateDIDAddressResponse{
		Valid: did.ValidateDIDAddress(normalized, address),
	}
}

func (e *executor) NormalizeAccount(ctx context.Context, account string) *dto.AccountResponse {
	resp := e.normalizeAccount(account)
	return &resp
}

func (e *executor) normalizeAccount(account string) dto.AccountResponse {
	result := caip10.Normalize(account)
	if result.Valid {
		e.metrics.IncrementNormalization("caip10", "ok")
	} else {
		e.metrics.IncrementNormalization("caip10", string(result.Kind))
	}
	return dto.MapAccountResult(account, result)
}

func (e *executor) NormalizeAccounts(ctx context.Context, accounts []string) (*dto.BatchNormalizeAccountsResponse, error) {
	if len(accounts) == 0 {
		return nil, apierrors.NewValidationError("accounts must not be empty")
	}
	if len(accounts) > e.config.MaxBatchItems {
		return nil, apierrors.NewValidationError(fmt.Sprintf("at most %d accounts per request", e.config.MaxBatchItems))
	}

	group := e.pool.NewGroupContext(ctx)
	for _, account := range accounts {
		group.Submit(func() dto.AccountResponse {
			return e.normalizeAccount(account)
		})
	}

	results, err := group.Wait()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewBadRequestError("Request canceled", err.Error())
		}
		logger.ErrorCtx(ctx, err, zap.Int("accounts", len(accounts)))
		return nil, apierrors.NewInternalError("Failed to normalize accounts")
	}

	resp := &dto.BatchNormalizeAccountsResponse{Results: results}
	for _, r := range results {
		if r.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp, nil
}

func (e *executor) ListChains(ctx context.Context, query string, limit int) (*dto.ChainListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_CHAINS_LIMIT
	}
	if limit > constants.MAX_CHAINS_LIMIT {
		return nil, apierrors.NewValidationError(fmt.Sprintf("limit must be at most %d", constants.MAX_CHAINS_LIMIT))
	}

	var infos []registry.ChainInfo
	if query == "" {
		infos = e.chains.List()
		if len(infos) > limit {
			infos = infos[:limit]
		}
	} else {
		infos = e.chains.Search(query, limit)
	}

	resp := dto.MapChainList(infos)
	return &resp, nil
}

func (e *executor) GetChain(ctx context.Context, chain string) (*dto.ChainResponse, error) {
	normalized, err := registry.NormalizeChain(domain.Chain(chain))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedNamespace) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewBadRequestError("Invalid chain id", err.Error())
	}

	info, ok := e.chains.Lookup(normalized)
	if !ok {
		return nil, apierrors.NewNotFoundError("Chain not found", string(normalized))
	}

	resp := dto.MapChainInfo(*info)
	return &resp, nil
}

func (e *executor) VerifyBinding(ctx context.Context, req dto.VerifyBindingRequest) (*dto.VerifyBindingResponse, error) {
	if len(req.Message) > constants.MAX_MESSAGE_LENGTH {
		return nil, apierrors.NewValidationError(fmt.Sprintf("message must be at most %d bytes", constants.MAX_MESSAGE_LENGTH))
	}
	if len(req.Signature) > constants.MAX_SIGNATURE_LENGTH {
		return nil, apierrors.NewValidationError(fmt.Sprintf("signature must be at most %d bytes", constants.MAX_SIGNATURE_LENGTH))
	}

	account := caip10.Normalize(req.Account)
	if !account.Valid {
		return nil, apierrors.NewValidationError(account.Error)
	}
	namespace := account.Parsed.Namespace

	if e.denylist != nil && e.denylist.IsDenied(account.Normalized) {
		e.metrics.IncrementBindingVerification(namespace, "denied")
		logger.WarnCtx(ctx, "Binding rejected for denied account", zap.String("account", account.Normalized))
		return nil, apierrors.NewForbiddenError("Account is denied", account.Normalized)
	}

	record, id, err := e.binder.Bind(req.DID, account.Normalized, req.Message, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			e.metrics.IncrementBindingVerification(namespace, "rejected")
			return &dto.VerifyBindingResponse{
				Verified: false,
				Account:  account.Normalized,
				Error:    err.Error(),
			}, nil
		case errors.Is(err, domain.ErrInvalidDID),
			errors.Is(err, domain.ErrInvalidCAIP10),
			errors.Is(err, domain.ErrInvalidAddress),
			errors.Is(err, domain.ErrUnsupportedNamespace):
			e.metrics.IncrementBindingVerification(namespace, "invalid")
			return nil, apierrors.NewValidationError(err.Error())
		default:
			logger.ErrorCtx(ctx, err, zap.String("account", account.Normalized))
			return nil, apierrors.NewInternalError("Failed to verify binding")
		}
	}

	e.metrics.IncrementBindingVerification(namespace, "verified")
	return &dto.VerifyBindingResponse{
		Verified:   true,
		BindingID:  id,
		DID:        record.DID,
		DIDHash:    record.DIDHash,
		DIDAddress: record.DIDAddress,
		Account:    record.Account,
		IssuedAt:   &record.IssuedAt,
	}, nil
}

func (e *executor) Close() {
	e.closeOnce.Do(e.pool.StopAndWait)
}
