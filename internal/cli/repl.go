package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it.
// println writes to the same guarded output the handlers and notices use.
type execIface interface {
	isLoggedIn() bool
	println(args ...any)
	Cat(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, name string) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI() error
	Select(path string) error
	Upload(ctx context.Context) error
	Images() error
	Puzzle() error
	Set(cell, value string) error
	Submit() error
}

const (
	helpGuest  = "Available commands: cat, list, add <name>, rename <id> <name>, delete <id>, select <path>, upload, images, puzzle, set <cell> <value>, submit, register, login, whoami, exit"
	helpMember = "Available commands: cat, list, add <name>, rename <id> <name>, delete <id>, select <path>, upload, images, puzzle, set <cell> <value>, submit, logout, whoami, exit"
)

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit". Errors from handlers are not printed here: controller
// failures arrive as notices and handlers report their own input problems.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		a.println(fmt.Sprintf("cb %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				a.println(helpMember)
			} else {
				a.println(helpGuest)
			}

		case "cat":
			_ = a.Cat(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx, strings.Join(args, " "))

		case "rename":
			if len(args) == 0 {
				a.println("Usage: rename <id> <name>")
				continue
			}
			_ = a.Rename(ctx, args[0], strings.Join(args[1:], " "))

		case "delete":
			if len(args) != 1 {
				a.println("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI()

		case "select":
			if len(args) == 0 {
				a.println("Usage: select <path>")
				continue
			}
			_ = a.Select(strings.Join(args, " "))

		case "upload":
			_ = a.Upload(ctx)

		case "images":
			_ = a.Images()

		case "puzzle":
			_ = a.Puzzle()

		case "set":
			if len(args) != 2 {
				a.println("Usage: set <cell> <value>")
				continue
			}
			_ = a.Set(args[0], args[1])

		case "submit":
			_ = a.Submit()

		case "exit", "quit":
			a.println("Bye!")
			return

		default:
			a.println("Unknown command:", cmd)
		}
	}
}
