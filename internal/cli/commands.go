package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catboard/internal/cryptox"
	"github.com/dmitrijs2005/catboard/internal/puzzle"
)

// getSimpleText and getPassword are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) Cat(ctx context.Context) error {
	url, err := a.ctrl.FetchRandomCat(ctx)
	if err != nil {
		return err
	}
	a.println("Cat:", url)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if _, err := a.ctrl.ListRecords(ctx); err != nil {
		return err
	}
	a.renderRecords()
	return nil
}

// Add creates a record. An empty name is stored as is.
func (a *App) Add(ctx context.Context, name string) error {
	a.ctrl.SetNewName(name)
	if err := a.ctrl.CreateRecord(ctx, name); err != nil {
		return err
	}
	a.renderRecords()
	return nil
}

func (a *App) Rename(ctx context.Context, id, name string) error {
	if err := a.ctrl.RenameRecord(ctx, id, name); err != nil {
		return err
	}
	a.renderRecords()
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.ctrl.DeleteRecord(ctx, id); err != nil {
		return err
	}
	a.renderRecords()
	return nil
}

// credentials prompts for email and password. The caller gets the password
// as a string; the byte slice read from the terminal is wiped.
func (a *App) credentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.println("error:", err)
		return "", "", err
	}

	pw, err := getPassword(a.out)
	if err != nil {
		a.println("error:", err)
		return "", "", err
	}
	defer cryptox.Wipe(pw)

	return email, string(pw), nil
}

func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	if err := a.ctrl.Register(ctx, email, password); err != nil {
		return err
	}
	a.println("Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	if err := a.ctrl.Login(ctx, email, password); err != nil {
		return err
	}
	a.println("Signed in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		return err
	}
	a.println("Signed out")
	return nil
}

func (a *App) WhoAmI() error {
	a.renderSession()
	return nil
}

func (a *App) Select(path string) error {
	if err := a.ctrl.SelectFile(path); err != nil {
		return err
	}
	f := a.ctrl.Snapshot().SelectedFile
	a.println(fmt.Sprintf("Selected %s (%d bytes)", f.Name, f.Size))
	return nil
}

func (a *App) Upload(ctx context.Context) error {
	if a.ctrl.Snapshot().SelectedFile == nil {
		a.println("No file selected")
		return nil
	}
	if err := a.ctrl.Upload(ctx); err != nil {
		return err
	}
	a.renderImages()
	return nil
}

func (a *App) Images() error {
	a.renderImages()
	return nil
}

func (a *App) Puzzle() error {
	a.renderBoard()
	return nil
}

func (a *App) Set(cell, value string) error {
	if err := a.ctrl.SetCell(cell, value); err != nil {
		return err
	}
	a.renderBoard()
	return nil
}

func (a *App) Submit() error {
	switch a.ctrl.Submit() {
	case puzzle.Win:
		a.println("You win!")
	default:
		a.println("You lose")
	}
	return nil
}
