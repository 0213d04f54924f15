/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package config

import (
	"os"
	"path/filepath"
)

func configPaths() []string {
	return []string{filepath.Join(os.Getenv("ProgramData"), "cpuutilization"), "."}
}
