package dto

type AudioStats struct {
	TotalFiles int      `json:"totalFiles"`
	TotalSize  string   `json:"totalSize"`
	Files      []string `json:"files"`
}

type PrewarmSummary struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}
