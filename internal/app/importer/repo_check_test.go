package importer_test

import (
	postgres "github.com/heartmarshall/trmorph/internal/adapter/postgres"
	"github.com/heartmarshall/trmorph/internal/adapter/postgres/lexeme"
	"github.com/heartmarshall/trmorph/internal/app/importer"
)

var (
	_ importer.LexemeRepo = (*lexeme.Repo)(nil)
	_ importer.TxManager  = (*postgres.TxManager)(nil)
)
