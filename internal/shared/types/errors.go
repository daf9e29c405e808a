package types

import "errors"

// ErrNoDataDir é retornado quando o diretório de dados não existe.
// Falha fatal: a execução aborta sem escrever artefatos.
var ErrNoDataDir = errors.New("data directory does not exist. Please provide --data-dir or configure data_dir")
