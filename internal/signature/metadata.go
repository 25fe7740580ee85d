package signature

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFile is the name of the installer's deployment record inside an
// install workspace.
const MetadataFile = "metadata.json"

// Metadata mirrors the fields of the installer's metadata.json relevant to
// signature resolution.
type Metadata struct {
	ClusterName string `json:"clusterName"`
	ClusterID   string `json:"clusterID"`
	InfraID     string `json:"infraID"`
}

// ReadMetadata parses the metadata record at path.
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &md, nil
}

// FromMetadata resolves the signature recorded in workspace/metadata.json.
// The infrastructure id has the form <name>-<signature>; the signature is the
// segment after the final hyphen.
func FromMetadata(workspace string) (Signature, error) {
	path := filepath.Join(workspace, MetadataFile)
	md, err := ReadMetadata(path)
	if err != nil {
		return "", err
	}
	if md.InfraID == "" {
		return "", fmt.Errorf("%s carries no infraID", path)
	}
	i := strings.LastIndex(md.InfraID, "-")
	if i < 0 {
		return "", fmt.Errorf("infraID %q has no signature suffix", md.InfraID)
	}
	sig, err := Parse(md.InfraID[i+1:])
	if err != nil {
		return "", fmt.Errorf("infraID %q: %w", md.InfraID, err)
	}
	return sig, nil
}
