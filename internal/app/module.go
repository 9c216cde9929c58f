package app

import (
	"log/slog"
	"os"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode"
)

// initModules builds the business modules. The credential module always
// comes first: its usecase is the authorization gate guarding the passcode
// endpoints.
func (a *App) initModules() {
	gate, err := credential.New(credential.Dependency{
		DBConn:      a.dbConn,
		Router:      a.router,
		Idempotency: a.idemp,
		Config:      a.config,
		Instrument:  a.ins,
		Secret:      a.keyGen,
		Mailer:      a.mail,
		UID:         a.uid,
		Validator:   a.validator,
	})
	if err != nil {
		slog.Error("failed to init module credential", "error", err)
		os.Exit(1)
	}

	if a.config.GetBool("modules.passcode.enabled") {
		if err := passcode.New(a.ctx, passcode.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Gate:       gate,
			Goroutine:  a.goroutine,
			Config:     a.config,
			Instrument: a.ins,
			Secret:     a.otpGen,
			Hasher:     a.sha256,
			Mailer:     a.mail,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module passcode", "error", err)
			os.Exit(1)
		}
	}
}
