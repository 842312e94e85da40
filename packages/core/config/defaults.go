package config

import "github.com/abdul-hamid-achik/rolespec/packages/conftree"

// DefaultTree returns the built-in base layer every scenario starts from.
// Each call returns a fresh tree, so callers may mutate the result freely.
func DefaultTree() conftree.Tree {
	return conftree.Tree{
		"driver": conftree.Tree{
			"name":    "docker",
			"managed": true,
		},
		"provisioner": conftree.Tree{
			"name":     "shell",
			"playbook": "playbook.yml",
		},
		"verifier": conftree.Tree{
			"name":      "roletest",
			"directory": "tests",
		},
	}
}
