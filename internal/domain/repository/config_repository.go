package repository

import "github.com/diillson/campus-energy-dashboard-go/internal/shared/types"

// ConfigRepository define a interface para carregar arquivos de configuração.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
