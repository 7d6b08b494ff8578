package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// paramID lee un id numérico positivo del path.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput("%s debe ser un entero positivo", name)
	}
	return id, nil
}

// parseBody decodifica el JSON del cuerpo; un cuerpo malformado es entrada inválida.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return invalidInput("cuerpo inválido")
	}
	return nil
}

// localePrefs preferencias de idioma del cliente: ?locale= y luego Accept-Language.
func localePrefs(c *fiber.Ctx) []string {
	var prefs []string
	if q := c.Query("locale"); q != "" {
		prefs = append(prefs, q)
	}
	if h := c.Get(fiber.HeaderAcceptLanguage); h != "" {
		prefs = append(prefs, h)
	}
	return prefs
}
