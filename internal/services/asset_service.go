package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
	"github.com/fathima-sithara/cloudee-backend/internal/repository"
	"github.com/fathima-sithara/cloudee-backend/internal/storage"
)

type assetService struct {
	assets      repository.AssetRepository
	users       repository.UserRepository
	store       storage.ObjectStore
	logger      *zap.SugaredLogger
	rootFolder  string
	concurrency int
}

func NewAssetService(
	assets repository.AssetRepository,
	users repository.UserRepository,
	store storage.ObjectStore,
	logger *zap.SugaredLogger,
	rootFolder string,
	concurrency int,
) AssetService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &assetService{
		assets:      assets,
		users:       users,
		store:       store,
		logger:      logger,
		rootFolder:  rootFolder,
		concurrency: concurrency,
	}
}

// Upload stores the content remotely first and indexes it second; the record
// is never written speculatively. If indexing fails a compensating delete of
// the just-created object keeps the stores from diverging.
func (s *assetService) Upload(ctx context.Context, email, filename string, content io.Reader) (*models.Asset, error) {
	res, err := s.store.Upload(ctx, content, storage.UserFolder(s.rootFolder, email))
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", filename, err)
	}

	asset := &models.Asset{
		Email:        email,
		Filename:     filename,
		URL:          res.URL,
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
	}
	if _, err := s.assets.Insert(ctx, asset); err != nil {
		if _, derr := s.deleteObject(ctx, res.PublicID, res.ResourceType); derr != nil {
			s.logger.Errorf("compensating delete of %s failed: %v", res.PublicID, derr)
			return nil, fmt.Errorf("indexing uploaded file (object %s left orphaned): %w", res.PublicID, err)
		}
		return nil, fmt.Errorf("indexing uploaded file: %w", err)
	}
	return asset, nil
}

// UploadBase64 decodes and uploads; malformed input fails before any remote call.
func (s *assetService) UploadBase64(ctx context.Context, email, filename, imageBase64 string) (*models.Asset, error) {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base64 content", ErrInvalidInput)
	}
	return s.Upload(ctx, email, filename, bytes.NewReader(raw))
}

func (s *assetService) ListData(ctx context.Context, email string) ([]models.Asset, *models.User, error) {
	assets, err := s.assets.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("listing assets: %w", err)
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return assets, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("finding user: %w", err)
	}
	return assets, user, nil
}

// DeleteByPublicID removes a single object, discovering the resource kind by
// probing, then cleans up the metadata record. ErrAssetNotFound means neither
// kind had the object; other errors are transport failures.
func (s *assetService) DeleteByPublicID(ctx context.Context, publicID string) error {
	outcome, err := s.deleteObject(ctx, publicID, "")
	if err != nil {
		return fmt.Errorf("deleting %s: %w", publicID, err)
	}
	if outcome != storage.OutcomeOK {
		return ErrAssetNotFound
	}
	s.cleanupRecordByPublicID(ctx, publicID)
	return nil
}

// BulkDelete attempts every item regardless of sibling failures and reports a
// partition of successes and failures in input order. Item work fans out over
// a bounded group; workers never return an error, so no item can cancel
// another.
func (s *assetService) BulkDelete(ctx context.Context, publicIDs []string) *models.BulkDeleteReport {
	type itemOutcome struct {
		deleted bool
		reason  string
	}
	results := make([]itemOutcome, len(publicIDs))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, publicID := range publicIDs {
		i, publicID := i, publicID // per-iteration copies; go directive predates Go 1.22 loopvar semantics
		g.Go(func() error {
			outcome, err := s.deleteObject(ctx, publicID, "")
			switch {
			case err != nil:
				results[i] = itemOutcome{reason: err.Error()}
			case outcome != storage.OutcomeOK:
				results[i] = itemOutcome{reason: string(outcome)}
			default:
				s.cleanupRecordByPublicID(ctx, publicID)
				results[i] = itemOutcome{deleted: true}
			}
			return nil
		})
	}
	_ = g.Wait()

	report := &models.BulkDeleteReport{Deleted: []string{}, Failed: []models.FailedDelete{}}
	for i, r := range results {
		if r.deleted {
			report.Deleted = append(report.Deleted, publicIDs[i])
		} else {
			report.Failed = append(report.Failed, models.FailedDelete{PublicID: publicIDs[i], Reason: r.reason})
		}
	}
	return report
}

// DeleteAssets deletes store objects and their paired metadata records.
// Object-store deletion is always attempted before the metadata delete; an
// already-gone object does not block metadata cleanup.
func (s *assetService) DeleteAssets(ctx context.Context, items []models.ItemToDelete) *models.AssetDeleteReport {
	report := &models.AssetDeleteReport{
		DeletedFromCloudinary: []string{},
		DeletedFromMongo:      []string{},
		TotalRequested:        len(items),
	}
	for _, item := range items {
		s.deleteAssetPair(ctx, item.PublicID, "", item.MongoID, report)
	}
	report.SuccessCount = len(report.DeletedFromMongo)
	return report
}

// DeleteAccount cascades a user deletion: per-asset cleanup with
// attempt-all-report-all semantics, best-effort folder removal, then the user
// record last so a crash mid-cascade leaves the account re-discoverable.
// Re-running against an erased email yields a zero-deletion report with
// UserFound false.
func (s *assetService) DeleteAccount(ctx context.Context, email string) (*models.AccountDeleteReport, error) {
	assets, err := s.assets.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing assets for %s: %w", email, err)
	}

	report := &models.AccountDeleteReport{
		AssetDeleteReport: models.AssetDeleteReport{
			DeletedFromCloudinary: []string{},
			DeletedFromMongo:      []string{},
			TotalRequested:        len(assets),
		},
	}
	for _, a := range assets {
		s.deleteAssetPair(ctx, a.PublicID, a.ResourceType, a.ID.Hex(), &report.AssetDeleteReport)
	}
	report.SuccessCount = len(report.DeletedFromMongo)

	if err := s.store.DeleteFolder(ctx, storage.UserFolder(s.rootFolder, email)); err != nil {
		s.logger.Warnf("failed to delete folder for %s: %v", email, err)
	}

	deleted, err := s.users.DeleteByEmail(ctx, email)
	if err != nil {
		return report, fmt.Errorf("deleting user record: %w", err)
	}
	report.UserFound = deleted > 0
	return report, nil
}

// deleteAssetPair handles one object+record pair and folds the outcome into
// the report. The metadata delete only runs once the object-store attempt has
// completed without a transport error.
func (s *assetService) deleteAssetPair(ctx context.Context, publicID, kind, recordID string, report *models.AssetDeleteReport) {
	if _, err := s.deleteObject(ctx, publicID, kind); err != nil {
		s.logger.Warnf("error deleting %s: %v", publicID, err)
		return
	}
	report.DeletedFromCloudinary = append(report.DeletedFromCloudinary, publicID)

	n, err := s.assets.DeleteByID(ctx, recordID)
	if err != nil {
		s.logger.Warnf("error deleting metadata record %s: %v", recordID, err)
		return
	}
	if n == 0 {
		s.logger.Debugf("metadata record %s already absent", recordID)
		return
	}
	report.DeletedFromMongo = append(report.DeletedFromMongo, recordID)
}

// deleteObject removes one object. With a known kind the delete goes straight
// there; otherwise the kind is discovered by probing image first, then raw.
func (s *assetService) deleteObject(ctx context.Context, publicID, kind string) (storage.Outcome, error) {
	if kind != "" && kind != "auto" {
		return s.store.Delete(ctx, publicID, kind)
	}
	outcome, err := s.store.Delete(ctx, publicID, storage.KindImage)
	if err != nil || outcome != storage.OutcomeNotFound {
		return outcome, err
	}
	return s.store.Delete(ctx, publicID, storage.KindRaw)
}

// cleanupRecordByPublicID drops the metadata record after a successful object
// delete. An already-absent record is the expected state on re-runs and is
// only logged.
func (s *assetService) cleanupRecordByPublicID(ctx context.Context, publicID string) {
	n, err := s.assets.DeleteByPublicID(ctx, publicID)
	if err != nil {
		s.logger.Warnf("metadata cleanup for %s failed: %v", publicID, err)
		return
	}
	if n == 0 {
		s.logger.Debugf("no metadata record for %s", publicID)
	}
}
