// Command identity-migrate moves every record of one identity to a new
// email against the configured record store. It does not touch the auth
// provider; use it to finish a run the API could not complete.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"lounge/config"
	"lounge/internal/domain/denormalization"
	"lounge/internal/infra/firebase"
	logs "lounge/internal/infra/log"
	"lounge/internal/infra/persistence"
	"lounge/internal/infra/persistence/postgres"
	"lounge/internal/infra/pubsub"
	"lounge/internal/usecase"
	"lounge/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	oldEmail := flag.String("old", "", "Current email of the identity")
	newEmail := flag.String("new", "", "Email to migrate the identity to")
	history := flag.Bool("history", false, "List recorded runs for -old instead of migrating")
	flag.Parse()

	if *oldEmail == "" || (*newEmail == "" && !*history) {
		fmt.Fprintln(os.Stderr, "usage: identity-migrate -old <email> -new <email>")
		fmt.Fprintln(os.Stderr, "       identity-migrate -old <email> -history")
		os.Exit(2)
	}

	if err := run(context.Background(), *oldEmail, *newEmail, *history); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, oldEmail, newEmail string, history bool) error {
	var migration usecase.IdentityMigrationUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			// Results go to stdout, logs to stderr.
			fx.Annotate(func() io.Writer { return os.Stderr }, fx.ResultTags(`name:"log_output"`)),
			firebase.NewApp,
			postgres.New,
			postgres.NewMigrationAuditRepository,
			denormalization.Default,
			impl.NewIdentityMigrationService,
		),
		persistence.Module,
		pubsub.Module,
		fx.Populate(&migration),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to stop: %v\n", err)
		}
	}()

	if history {
		records, err := migration.History(ctx, oldEmail)
		if err != nil {
			return err
		}

		return printJSON(records)
	}

	report, err := migration.MigrateIdentity(ctx, oldEmail, newEmail)
	if report != nil {
		if printErr := printJSON(report); printErr != nil {
			return printErr
		}
	}
	if err != nil {
		return err
	}
	if !report.Complete() {
		return errors.Errorf("%d records could not be migrated", len(report.Failures))
	}

	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

