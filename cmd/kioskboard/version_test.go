package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionClient struct{ version string }

func (f fakeVersionClient) Version() string { return f.version }

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCmd(fakeVersionClient{version: "1.0.0+abc1234"}))
	require.NoError(t, err)
	assert.Equal(t, "kioskboard version 1.0.0+abc1234\n", out)
}

func TestVersionCommandRejectsArgs(t *testing.T) {
	_, err := execute(t, NewVersionCmd(fakeVersionClient{}), "extra")
	assert.Error(t, err)
}

func TestNewVersionCmdPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewVersionCmd(nil) })
}
