package resolve_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stasinato/dto-generator/internal/resolve"
)

func ExampleTypeName() {
	fmt.Println(resolve.TypeName("user_profile"))
	fmt.Println(resolve.TypeName("user-profile.v2"))
	fmt.Println(resolve.TypeName("order items"))
	fmt.Println(resolve.TypeName(""))
	fmt.Println(resolve.TypeName("42"))

	// Output:
	// UserProfile
	// UserProfileV2
	// OrderItems
	// UnnamedRecord
	// UnnamedRecord
}

func ExampleFieldName() {
	fmt.Println(resolve.FieldName("user_name"))
	fmt.Println(resolve.FieldName("CreatedAt"))
	fmt.Println(resolve.FieldName("a_b_c"))
	fmt.Println(resolve.FieldName("_private"))
	fmt.Println(resolve.FieldName(""))

	// Output:
	// userName
	// createdAt
	// aBC
	// private
	// empty
}

func TestFieldNameUnderscoreProperties(t *testing.T) {
	for _, raw := range []string{
		"user_name", "a_b", "first_second_third", "created_at_ts", "x_y_z_w",
	} {
		got := resolve.FieldName(raw)
		assert.NotContains(t, got, "_", "raw %q", raw)
		assert.Equal(t, strings.ToLower(got[:1]), got[:1], "raw %q must start lowercase", raw)

		// each segment after the first starts uppercase in the output
		segs := strings.Split(raw, "_")
		for _, seg := range segs[1:] {
			if seg == "" {
				continue
			}
			want := strings.ToUpper(seg[:1]) + seg[1:]
			assert.Contains(t, got, want, "raw %q", raw)
		}
	}
}
