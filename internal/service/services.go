package service

import (
	"fmt"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/crypto"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

// Services aggregates the business-logic components used by the transport
// layer, together with the upload policies they are called with.
type Services struct {
	AuthService         AuthService
	AccountService      AccountService
	FileIntakeService   FileIntakeService
	FileRegistryService FileRegistryService
	DatasetService      DatasetService
	AppInfoService      AppInfoService

	ImagePolicy   models.UploadPolicy
	DatasetPolicy models.UploadPolicy
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher(crypto.DefaultCost)
	imagePolicy := models.ImagePolicy(cfg.Storage.Files.UploadsDir)
	datasetPolicy := models.DatasetPolicy(cfg.Storage.Files.UploadsDir)

	intake := NewFileIntakeService(storages.FileStorage, storages.FileRepository, logger)
	accounts := NewAccountValidationService().Wrap(
		NewAccountService(storages.UserRepository, hasher, intake, imagePolicy, logger),
	)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		AccountService:      accounts,
		FileIntakeService:   intake,
		FileRegistryService: NewFileRegistryService(storages.FileRepository, storages.FileStorage, logger),
		DatasetService:      NewDatasetService(storages.FileRepository, storages.FileStorage, logger),
		AppInfoService:      appInfoService,
		ImagePolicy:         imagePolicy,
		DatasetPolicy:       datasetPolicy,
	}, nil
}
