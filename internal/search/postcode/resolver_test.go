package postcode_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"courtfinder/internal/search/postcode"
	"courtfinder/internal/search/postcode/mocks"
)

func TestResolveMalformedPostcodeMakesNoProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("primary").AnyTimes()
	// No lookup expectations: any geocode call fails the test.

	resolver, err := postcode.NewResolver([]postcode.Provider{provider})
	require.NoError(t, err)

	for _, raw := range []string{"SE15 4", "not a postcode", "", "Z111 2YY"} {
		_, err := resolver.Resolve(context.Background(), raw)
		assert.True(t, postcode.IsInvalid(err), "expected invalid postcode for %q, got %v", raw, err)
	}
}

func TestResolveFullPostcodeUsesFirstProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("primary").AnyTimes()
	provider.EXPECT().Geocode(gomock.Any(), "SE15 4UH", false).
		Return(postcode.Point{Lat: 51.5570372347208, Lon: -1.78826971425321}, nil)

	resolver, err := postcode.NewResolver([]postcode.Provider{provider})
	require.NoError(t, err)

	resolved, err := resolver.Resolve(context.Background(), "se15  4uh")
	require.NoError(t, err)
	assert.Equal(t, "SE15 4UH", resolved.Postcode)
	assert.Equal(t, 51.5570372347208, resolved.Lat)
	assert.Equal(t, -1.78826971425321, resolved.Lon)
	assert.False(t, resolved.Partial)
	assert.False(t, resolved.Scotland)
	assert.False(t, resolved.NorthernIreland)
}

func TestResolvePartialFallsBackToPartialCapableProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockProvider(ctrl)
	primary.EXPECT().Name().Return("primary").AnyTimes()
	primary.EXPECT().SupportsPartial().Return(false).AnyTimes()

	secondary := mocks.NewMockProvider(ctrl)
	secondary.EXPECT().Name().Return("secondary").AnyTimes()
	secondary.EXPECT().SupportsPartial().Return(true).AnyTimes()
	secondary.EXPECT().Geocode(gomock.Any(), "SE15", true).
		Return(postcode.Point{Lat: 53.41723542125218, Lon: -1.946231306487139}, nil)

	resolver, err := postcode.NewResolver([]postcode.Provider{primary, secondary})
	require.NoError(t, err)

	resolved, err := resolver.Resolve(context.Background(), "SE15  ")
	require.NoError(t, err)
	assert.True(t, resolved.Partial)
	assert.Equal(t, 53.41723542125218, resolved.Lat)
}

func TestResolveClassifiesJurisdiction(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("primary").AnyTimes()
	provider.EXPECT().SupportsPartial().Return(true).AnyTimes()
	provider.EXPECT().Geocode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(postcode.Point{Lat: 55.9, Lon: -3.2}, nil).AnyTimes()

	resolver, err := postcode.NewResolver([]postcode.Provider{provider})
	require.NoError(t, err)

	scot, err := resolver.Resolve(context.Background(), "G2")
	require.NoError(t, err)
	assert.True(t, scot.Scotland)

	ni, err := resolver.Resolve(context.Background(), "BT2")
	require.NoError(t, err)
	assert.True(t, ni.NorthernIreland)
}

func TestResolveCachesResolvedPostcodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("primary").AnyTimes()
	// A single provider call serves both resolutions.
	provider.EXPECT().Geocode(gomock.Any(), "SE15 4UH", false).
		Return(postcode.Point{Lat: 51.55, Lon: -1.78}, nil).Times(1)

	cache := postcode.NewMemoryCache(time.Minute)
	resolver, err := postcode.NewResolver([]postcode.Provider{provider}, postcode.WithCache(cache))
	require.NoError(t, err)

	first, err := resolver.Resolve(context.Background(), "SE15 4UH")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "SE15 4UH")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolverPropagatesProviderFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("primary").AnyTimes()
	provider.EXPECT().Geocode(gomock.Any(), "GY1 1AJ", false).
		Return(postcode.Point{}, &postcode.InvalidPostcodeError{Postcode: "GY1 1AJ"})

	resolver, err := postcode.NewResolver([]postcode.Provider{provider})
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "GY1 1AJ")
	assert.True(t, postcode.IsInvalid(err))
}

func TestLocalAuthorityUsesCapableProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockProvider(ctrl)
	primary.EXPECT().Name().Return("primary").AnyTimes()
	primary.EXPECT().SupportsLocalAuthority().Return(false).AnyTimes()

	secondary := mocks.NewMockProvider(ctrl)
	secondary.EXPECT().Name().Return("secondary").AnyTimes()
	secondary.EXPECT().SupportsLocalAuthority().Return(true).AnyTimes()
	secondary.EXPECT().LocalAuthority(gomock.Any(), "SE15 4UH").
		Return("Southwark Borough Council", nil)

	resolver, err := postcode.NewResolver([]postcode.Provider{primary, secondary})
	require.NoError(t, err)

	la, err := resolver.LocalAuthority(context.Background(), &postcode.Resolved{Postcode: "SE15 4UH"})
	require.NoError(t, err)
	assert.Equal(t, "Southwark Borough Council", la)
}

func TestResolverTripsCircuitAfterRepeatedFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	flaky := mocks.NewMockProvider(ctrl)
	flaky.EXPECT().Name().Return("flaky").AnyTimes()
	flaky.EXPECT().SupportsPartial().Return(true).AnyTimes()
	flaky.EXPECT().Geocode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(postcode.Point{}, &postcode.ProviderError{Provider: "flaky", Err: context.DeadlineExceeded}).
		Times(5)

	steady := mocks.NewMockProvider(ctrl)
	steady.EXPECT().Name().Return("steady").AnyTimes()
	steady.EXPECT().SupportsPartial().Return(true).AnyTimes()
	steady.EXPECT().Geocode(gomock.Any(), "SE15 4UH", false).
		Return(postcode.Point{Lat: 51.55, Lon: -0.06}, nil)

	resolver, err := postcode.NewResolver([]postcode.Provider{flaky, steady})
	require.NoError(t, err)

	// Five failures open the flaky provider's circuit.
	for i := 0; i < 5; i++ {
		_, err := resolver.Resolve(context.Background(), "SE15 4UH")
		assert.True(t, postcode.IsProviderError(err))
	}

	// The next resolution routes around the open circuit.
	resolved, err := resolver.Resolve(context.Background(), "SE15 4UH")
	require.NoError(t, err)
	assert.Equal(t, 51.55, resolved.Lat)
}
