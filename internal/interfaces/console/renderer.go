// Package console contiene los controladores de vista de la terminal, una
// vista por subcomando. Cada vista pasa por
// Loading → Success (tabla o placeholder "sin resultados") / Error inline;
// ningún error escapa del controlador.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

// Renderer capa de render mínima sobre un io.Writer. Mantenerla tonta: los
// controladores deciden QUÉ mostrar, esto solo decide cómo alinearlo.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Loading placeholder previo al fetch.
func (r *Renderer) Loading(what string) {
	fmt.Fprintf(r.out, "Cargando %s...\n", what)
}

// Empty placeholder explícito de colección vacía.
func (r *Renderer) Empty(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *Renderer) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "ERROR: "+format+"\n", args...)
}

// LoginRedirect invita a iniciar sesión; no es un banner de error.
func (r *Renderer) LoginRedirect() {
	fmt.Fprintln(r.out, "Sesión requerida. Inicie sesión con: nblb login -u <usuario>")
}

// Table imprime una tabla alineada con cabecera.
func (r *Renderer) Table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// FetchError render del error en la frontera del controlador, según la
// taxonomía: falta de sesión → redirect a login (no es un banner de error);
// mensaje del servidor → textual; resto → genérico por acción.
func (r *Renderer) FetchError(action string, err error) {
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		r.LoginRedirect()
	case errors.Is(err, domain.ErrForbidden):
		r.LoginRedirect()
	default:
		if msg, ok := gateway.ServerMessage(err); ok {
			r.Errorf("%s: %s", action, msg)
			return
		}
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			r.Errorf("%s: acceso rechazado por la gateway", action)
		case errors.Is(err, domain.ErrInvalidResponse):
			r.Errorf("%s: respuesta inválida del servidor", action)
		default:
			r.Errorf("%s: error de red", action)
		}
	}
}

// Confirmer pregunta antes de una acción destructiva. La implementación por
// defecto lee y/n de stdin; los tests inyectan una respuesta fija.
type Confirmer func(prompt string) bool

// StdinConfirmer confirma leyendo una línea de in.
func StdinConfirmer(in io.Reader, out io.Writer) Confirmer {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes" || answer == "s" || answer == "si"
	}
}

// money formato uniforme de importes en tablas.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
