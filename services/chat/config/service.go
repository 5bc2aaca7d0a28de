package config

import "github.com/filingsight/filingsight/pkg/koanf"

type ChatConfig struct {
	Http koanf.HttpServer `json:"http,omitempty" koanf:"http"`

	// ProjectEndpoint is the URL of the remote agent project
	// (from the project overview page).
	ProjectEndpoint string `json:"project_endpoint,omitempty" koanf:"project_endpoint"`
	// AgentId is the id of a pre-existing agent in the project (asst_...).
	AgentId    string `json:"agent_id,omitempty" koanf:"agent_id"`
	ApiVersion string `json:"api_version,omitempty" koanf:"api_version"`
	TokenScope string `json:"token_scope,omitempty" koanf:"token_scope"`
}
