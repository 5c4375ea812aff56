// Package migrations embebe los archivos SQL de goose para que el binario
// del migrador no dependa de rutas en disco.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
