// restoctl tareas operativas: aplicar migraciones, asignar roles y exportar el OpenAPI.
//
// Uso:
//
//	restoctl migrate
//	restoctl grant-role --email ana@resto.com --role GERENTE
//	restoctl openapi -o docs/swagger.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
