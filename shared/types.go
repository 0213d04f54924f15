/*
Copyright 2023 AmidaWare Inc.

Licensed under the Tactical RMM License Version 1.0 (the “License”).
You may only use the Licensed Software in accordance with the License.
A copy of the License is available at:

https://license.tacticalrmm.com

*/

package shared

// UtilizationMsg is the encoded form of one cpu sample.
// Available is false and Percent zero when no sample could be taken.
type UtilizationMsg struct {
	Hostname  string  `json:"hostname"`
	Family    string  `json:"family"`
	Command   string  `json:"command"`
	Percent   float64 `json:"percent"`
	Available bool    `json:"available"`
	Timestamp int64   `json:"timestamp"`
}
