package metrics

import (
	"bytes"
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
)

// WriteTextfile renders the registry in the Prometheus text exposition format
// at path, for pickup by a node_exporter textfile collector. The write goes
// through a temp file and rename so the collector never reads a half-written
// snapshot.
func WriteTextfile(reg prom.Gatherer, path string) error {
	families, err := reg.Gather()
	if err != nil {
		return bberrors.InternalError("gather metrics", err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return bberrors.InternalError("encode metrics", err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".metrics-*.prom")
	if err != nil {
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "metrics textfile write failed").
			WithContext("path", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "metrics textfile write failed").
			WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "metrics textfile write failed").
			WithContext("path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "metrics textfile write failed").
			WithContext("path", path)
	}
	return nil
}
