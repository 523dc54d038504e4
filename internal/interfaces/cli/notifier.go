package cli

import (
	"fmt"
	"os"

	"github.com/agileflow/agileflow-go/internal/application/session"
)

var _ session.Notifier = stderrNotifier{}

// stderrNotifier imprime las notificaciones en stderr: el equivalente de los
// toasts de la aplicación web. Van a stderr para no contaminar la salida de
// datos de los comandos.
type stderrNotifier struct{}

func (stderrNotifier) Success(message string) { fmt.Fprintln(os.Stderr, "✔", message) }
func (stderrNotifier) Error(message string)   { fmt.Fprintln(os.Stderr, "✖", message) }
func (stderrNotifier) Info(message string)    { fmt.Fprintln(os.Stderr, "ℹ", message) }
