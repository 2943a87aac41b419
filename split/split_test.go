package split

import (
	"testing"

	"github.com/indigo-web/strparser/status"
	"github.com/stretchr/testify/require"
)

func collect(data string, sep byte) (tokens []string) {
	for token := range Iter([]byte(data), sep) {
		tokens = append(tokens, string(token))
	}

	return tokens
}

func TestIter(t *testing.T) {
	t.Run("multiple separators", func(t *testing.T) {
		require.Equal(t, []string{"Hello", "World", "Yes?"}, collect("Hello World Yes?", ' '))
	})

	t.Run("no separator", func(t *testing.T) {
		require.Equal(t, []string{"Hello,World!"}, collect("Hello,World!", ' '))
	})

	t.Run("separators one by one", func(t *testing.T) {
		require.Equal(t, []string{"", "Hello", "", "World!", ""}, collect(" Hello  World! ", ' '))
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, collect("", ','))
	})

	t.Run("lone separator", func(t *testing.T) {
		require.Equal(t, []string{"", ""}, collect(",", ','))
	})

	t.Run("early break", func(t *testing.T) {
		var n int
		for range Iter([]byte("a,b,c"), ',') {
			n++
			break
		}

		require.Equal(t, 1, n)
	})

	t.Run("append to token keeps input intact", func(t *testing.T) {
		data := []byte("a,b")
		for token := range Iter(data, ',') {
			_ = append(token, 'x')
		}

		require.Equal(t, "a,b", string(data))
	})
}

func TestBytes(t *testing.T) {
	t.Run("empty tokens", func(t *testing.T) {
		into := make([][]byte, 8)
		n, err := Bytes([]byte("a,,b,"), ',', into)
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, "a", string(into[0]))
		require.Empty(t, into[1])
		require.Equal(t, "b", string(into[2]))
		require.Empty(t, into[3])
	})

	t.Run("empty input", func(t *testing.T) {
		n, err := Bytes(nil, ',', make([][]byte, 1))
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, err := Bytes([]byte("a"), ',', nil)
		require.ErrorIs(t, err, status.ErrInvalidArgument)

		_, err = Bytes(nil, ',', nil)
		require.ErrorIs(t, err, status.ErrInvalidArgument)
	})

	t.Run("tokens stay within input", func(t *testing.T) {
		data := []byte("key;value;;x")
		into := make([][]byte, 4)
		n, err := Bytes(data, ';', into)
		require.NoError(t, err)

		var total int
		for _, token := range into[:n] {
			total += len(token)
		}

		require.Equal(t, len(data)-(n-1), total)
	})
}

func TestCapacityBoundary(t *testing.T) {
	const input = "a,b,c,d"

	t.Run("exact fit", func(t *testing.T) {
		into := make([][]byte, Count([]byte(input), ','))
		n, err := Bytes([]byte(input), ',', into)
		require.NoError(t, err)
		require.Equal(t, 4, n)
	})

	t.Run("one less with guards", func(t *testing.T) {
		guard := []byte("guard")
		buff := [][]byte{guard, nil, nil, nil, guard}
		into := buff[1:4:4]

		n, err := Bytes([]byte(input), ',', into)
		require.ErrorIs(t, err, status.ErrCapacityExceeded)
		require.Equal(t, 3, n)
		require.Equal(t, "guard", string(buff[0]))
		require.Equal(t, "guard", string(buff[4]))
	})
}

func TestString(t *testing.T) {
	into := make([]string, 4)
	n, err := String("a,,b,", ',', into)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "", "b", ""}, into[:n])

	guard := []string{"guard", "", "", "guard"}
	_, err = String("a,b,c", ',', guard[1:3:3])
	require.ErrorIs(t, err, status.ErrCapacityExceeded)
	require.Equal(t, "guard", guard[0])
	require.Equal(t, "guard", guard[3])

	n, err = String("", ',', into)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCount(t *testing.T) {
	require.Zero(t, Count(nil, ','))
	require.Equal(t, 2, Count([]byte(","), ','))
	require.Equal(t, 4, Count([]byte("a,,b,"), ','))
	require.Equal(t, 1, Count([]byte("abc"), ','))
}
