package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchErrorChain(t *testing.T) {
	fe := &FetchError{Kind: KindTransport, Message: "API request failed: context canceled", Err: context.Canceled}
	wrapped := fmt.Errorf("search: %w", fe)

	require.Equal(t, KindTransport, KindOf(wrapped))
	require.True(t, errors.Is(wrapped, context.Canceled))
	require.Equal(t, "API request failed: context canceled", fe.Error())
}

func TestKindOfPlainError(t *testing.T) {
	require.Equal(t, KindService, KindOf(errors.New("boom")))
	require.Equal(t, "empty_result", KindEmptyResult.String())
}
