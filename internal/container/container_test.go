package container

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"roof-coco/internal/infrastructure/raster"
)

func TestNew_DefaultBackend(t *testing.T) {
	c, err := New("", log.New(io.Discard, "", 0))
	require.NoError(t, err)
	require.NotNil(t, c.ConvertService)
}

func TestNew_GoCVBackend(t *testing.T) {
	_, err := New(RasterBackendGoCV, nil)
	if raster.GoCVAvailable {
		require.NoError(t, err)
	} else {
		require.Error(t, err)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New("gdal", nil)
	require.Error(t, err)
}
