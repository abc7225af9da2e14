package twitter

import "github.com/maggarwal/authgateway/pkg/api"

type User struct {
	ID         string `mapstructure:"id_str"`
	Name       string `mapstructure:"name"`
	ScreenName string `mapstructure:"screen_name"`
	Email      string `mapstructure:"email"`
	PhotoURL   string `mapstructure:"profile_image_url_https"`
}

// DecodeUser reads a verify_credentials object or the first element of a users/lookup array.
func DecodeUser(raw string) (User, error) {
	user := User{}
	if err := api.DecodeFirst([]byte(raw), &user); err != nil {
		return User{}, err
	}

	return user, nil
}
