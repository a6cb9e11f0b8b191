// Package timezone pins time handling to the application's configured zone.
//
//	now := timezone.Now()
//	stamp := timezone.Format(chore.CreatedAt, constant.DateFormat)
//
// The zone comes from APP_TIMEZONE and must be an IANA name such as "UTC" or
// "America/New_York". It is resolved once when the package is imported and falls
// back to UTC when unset or unknown.
//
// Due dates are calendar dates and are formatted with DateOnly, which never
// shifts them across zones.
package timezone
