package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sitetree/pkg/errors"
)

// sitePackagesScript prints one site-packages directory per line.
const sitePackagesScript = `import site; print('\n'.join(site.getsitepackages()))`

// interpreterNames are tried in order on PATH when no virtual environment is
// active and no interpreter was given explicitly.
var interpreterNames = []string{"python3", "python"}

// Locator finds the Python interpreter of the target environment and asks it
// for its site-packages directories.
type Locator struct {
	// Python is an explicit interpreter path or name. When empty the active
	// virtual environment (VIRTUAL_ENV) is used, then python3 and python on PATH.
	Python string

	// Logger receives debug output. Defaults to log.Default().
	Logger *log.Logger

	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewLocator returns a Locator that runs real processes.
func NewLocator(python string, logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.Default()
	}
	return &Locator{
		Python:   python,
		Logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Locate is a convenience wrapper around [NewLocator] and [Locator.Locate].
func Locate(ctx context.Context, python string, logger *log.Logger) ([]string, error) {
	return NewLocator(python, logger).Locate(ctx)
}

// Interpreter resolves the interpreter to run.
// Returns an error with code INTERPRETER_NOT_FOUND if none is usable.
func (l *Locator) Interpreter() (string, error) {
	if l.Python != "" {
		path, err := l.lookPath(l.Python)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInterpreterNotFound, err, "python interpreter %s", l.Python)
		}
		return path, nil
	}

	if venv := os.Getenv("VIRTUAL_ENV"); venv != "" {
		path := venvInterpreter(venv)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrap(errors.ErrCodeInterpreterNotFound, err, "virtual environment %s", venv)
		}
		l.Logger.Debug("using virtual environment", "path", path)
		return path, nil
	}

	for _, name := range interpreterNames {
		if path, err := l.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeInterpreterNotFound,
		"no python interpreter found on PATH (tried %s)", strings.Join(interpreterNames, ", "))
}

// Locate returns the site-packages directories of the target environment,
// in the order the interpreter reports them. Directories that do not exist
// are skipped. Returns an error with code SITE_PACKAGES_NOT_FOUND when none
// remain.
func (l *Locator) Locate(ctx context.Context) ([]string, error) {
	python, err := l.Interpreter()
	if err != nil {
		return nil, err
	}

	out, err := l.run(ctx, python, "-c", sitePackagesScript)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeSitePackagesNotFound, err, "query site-packages with %s", python)
	}

	var dirs []string
	for _, line := range strings.Split(string(out), "\n") {
		dir := strings.TrimSpace(line)
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			l.Logger.Debug("skipping site-packages entry", "path", dir)
			continue
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		return nil, errors.New(errors.ErrCodeSitePackagesNotFound, "%s reported no usable site-packages directory", python)
	}
	return dirs, nil
}

func venvInterpreter(venv string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venv, "Scripts", "python.exe")
	}
	return filepath.Join(venv, "bin", "python3")
}

// runCommand runs name with args and returns its stdout.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", name, err, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
