package treasury

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardAccumulates(t *testing.T) {
	tr := NewMemoryTreasury()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, tr.Award("alice", decimal.NewFromInt(10), "grand", at))
	require.NoError(t, tr.Award("alice", decimal.NewFromInt(5), "grand", at))
	require.NoError(t, tr.Award("bob", decimal.NewFromInt(3), "split_1", at))

	assert.True(t, tr.EarnedBy("alice").Equal(decimal.NewFromInt(15)))
	assert.True(t, tr.EarnedBy("bob").Equal(decimal.NewFromInt(3)))
	assert.True(t, tr.TotalAwarded().Equal(decimal.NewFromInt(18)))
	assert.Len(t, tr.Awards(), 3)
}

func TestAwardValidation(t *testing.T) {
	tr := NewMemoryTreasury()
	at := time.Now()

	assert.ErrorIs(t, tr.Award("", decimal.NewFromInt(1), "grand", at), ErrEmptyAccount)
	assert.ErrorIs(t, tr.Award("alice", decimal.Zero, "grand", at), ErrInvalidAward)
	assert.ErrorIs(t, tr.Award("alice", decimal.NewFromInt(-1), "grand", at), ErrInvalidAward)
}

func TestNFTPoolIsFIFO(t *testing.T) {
	tr := NewMemoryTreasury()

	require.NoError(t, tr.DepositNFT(NFT{ID: 1, Name: "first"}))
	require.NoError(t, tr.DepositNFT(NFT{ID: 2, Name: "second"}))
	assert.ErrorIs(t, tr.DepositNFT(NFT{ID: 1, Name: "dup"}), ErrDuplicateNFT)
	assert.Len(t, tr.AvailableNFTs(), 2)

	nft, err := tr.AwardNextNFT("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nft.ID)
	assert.Len(t, tr.AvailableNFTs(), 1)

	nft, err = tr.AwardNextNFT("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nft.ID)

	_, err = tr.AwardNextNFT("carol")
	assert.ErrorIs(t, err, ErrEmptyNFTPool)
}

func TestClaimNFTFromPendingQueue(t *testing.T) {
	tr := NewMemoryTreasury()
	require.NoError(t, tr.DepositNFT(NFT{ID: 1}))
	require.NoError(t, tr.DepositNFT(NFT{ID: 2}))

	_, err := tr.AwardNextNFT("alice")
	require.NoError(t, err)
	_, err = tr.AwardNextNFT("alice")
	require.NoError(t, err)
	require.Len(t, tr.PendingNFTs("alice"), 2)

	nft, err := tr.ClaimNFT("alice", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nft.ID)
	assert.Len(t, tr.PendingNFTs("alice"), 1)

	_, err = tr.ClaimNFT("alice", 5)
	assert.ErrorIs(t, err, ErrNoPendingNFT)
	_, err = tr.ClaimNFT("bob", 0)
	assert.ErrorIs(t, err, ErrNoPendingNFT)
}
