package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/perf-dashboard/models"
)

func runVersion(ctx context.Context, a *App, _ []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

// runLogin prints the token so it can be exported as ADAPTER_TOKEN.
func runLogin(ctx context.Context, a *App, args []string) error {
	fs := newFlagSet("login")
	identifier := fs.String("identifier", "", "username or email")
	password := fs.String("password", "", "password")
	role := fs.String("role", "", "expected role")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *identifier == "" || *password == "" {
		return fmt.Errorf("%w: identifier and password are required", ErrUsage)
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{
		Identifier: *identifier,
		Password:   *password,
		Role:       models.Role(*role),
	})
	if err != nil {
		return err
	}

	return a.print(resp)
}

func runMe(ctx context.Context, a *App, _ []string) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func runUpload(ctx context.Context, a *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no files given", ErrUsage)
	}

	files, err := a.adapter.UploadDatasets(ctx, args...)
	if err != nil {
		return err
	}
	return a.print(files)
}

func runList(ctx context.Context, a *App, args []string) error {
	fs := newFlagSet("list")
	mimeTypes := fs.String("mimetype", "", "comma-separated MIME types")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var filter []string
	for _, mimeType := range strings.Split(*mimeTypes, ",") {
		if mimeType = strings.TrimSpace(mimeType); mimeType != "" {
			filter = append(filter, mimeType)
		}
	}

	files, err := a.adapter.ListDatasets(ctx, filter...)
	if err != nil {
		return err
	}
	return a.print(files)
}

func runDelete(ctx context.Context, a *App, args []string) error {
	fileID, err := idArg(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteDataset(ctx, fileID); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: fmt.Sprintf("file %d deleted", fileID)})
}

func runSummary(ctx context.Context, a *App, args []string) error {
	fileID, err := idArg(args)
	if err != nil {
		return err
	}

	summary, err := a.adapter.SummarizeDataset(ctx, fileID)
	if err != nil {
		return err
	}
	return a.print(summary)
}

func runAnalysts(ctx context.Context, a *App, _ []string) error {
	analysts, err := a.adapter.ListAnalysts(ctx)
	if err != nil {
		return err
	}
	return a.print(analysts)
}

func runCreateAnalyst(ctx context.Context, a *App, args []string) error {
	fs := newFlagSet("create-analyst")
	username := fs.String("username", "", "analyst username")
	password := fs.String("password", "", "analyst password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("%w: username and password are required", ErrUsage)
	}

	analyst, err := a.adapter.CreateAnalyst(ctx, models.AnalystCreation{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	return a.print(analyst)
}

func runDeleteAnalyst(ctx context.Context, a *App, args []string) error {
	analystID, err := idArg(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteAnalyst(ctx, analystID); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: fmt.Sprintf("analyst %d deleted", analystID)})
}
