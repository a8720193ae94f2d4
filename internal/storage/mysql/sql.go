package mysql

// -----------------------------------------------------------------------------
// PROPERTIES
// -----------------------------------------------------------------------------

const insertPropertySQL = `
INSERT INTO properties (id, title, description, price, location, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const getPropertySQL = `
SELECT id, title, description, price, location, created_by, created_at
FROM properties
WHERE id = ?
`

const listPropertiesSQL = `
SELECT id, title, description, price, location, created_by, created_at
FROM properties
ORDER BY created_at DESC, id
`

const updatePropertySQL = `
UPDATE properties
SET title = ?, description = ?, price = ?, location = ?
WHERE id = ?
`

const deletePropertySQL = `DELETE FROM properties WHERE id = ?`

const countPropertiesSQL = `SELECT COUNT(*) FROM properties`

// -----------------------------------------------------------------------------
// BOOKINGS
// -----------------------------------------------------------------------------

const insertBookingSQL = `
INSERT INTO bookings (id, property_id, tenant_id, start_date, end_date, total_price, status, is_paid, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getBookingSQL = `
SELECT id, property_id, tenant_id, start_date, end_date, total_price, status, is_paid, created_at
FROM bookings
WHERE id = ?
`

const updateBookingSQL = `
UPDATE bookings
SET status = ?, is_paid = ?
WHERE id = ?
`

// Mirrors domain.Overlaps: an existing confirmed range collides when its
// start lands inside [start, end) or its end lands inside (start, end].
const confirmedOverlapSQL = `
SELECT EXISTS (
  SELECT 1 FROM bookings
  WHERE property_id = ?
    AND status = 'confirmed'
    AND ((start_date < ? AND start_date >= ?) OR (end_date > ? AND end_date <= ?))
)
`

const confirmedForPropertySQL = `
SELECT id, property_id, tenant_id, start_date, end_date, total_price, status, is_paid, created_at
FROM bookings
WHERE property_id = ? AND status = 'confirmed'
ORDER BY created_at, id
`

const bookingsForTenantSQL = `
SELECT id, property_id, tenant_id, start_date, end_date, total_price, status, is_paid, created_at
FROM bookings
WHERE tenant_id = ?
ORDER BY created_at DESC, id DESC
`

const bookingsForPropertySQL = `
SELECT id, property_id, tenant_id, start_date, end_date, total_price, status, is_paid, created_at
FROM bookings
WHERE property_id = ?
ORDER BY start_date ASC, id
`

const countBookingsByStatusSQL = `SELECT COUNT(*) FROM bookings WHERE status = ?`

// -----------------------------------------------------------------------------
// APPLICATIONS
// -----------------------------------------------------------------------------

const insertApplicationSQL = `
INSERT INTO applications (id, property_id, tenant_id, status, message, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

const getApplicationSQL = `
SELECT id, property_id, tenant_id, status, message, created_at
FROM applications
WHERE id = ?
`

const getApplicationForPairSQL = `
SELECT id, property_id, tenant_id, status, message, created_at
FROM applications
WHERE property_id = ? AND tenant_id = ?
`

const updateApplicationSQL = `
UPDATE applications
SET status = ?, message = ?, created_at = ?
WHERE id = ?
`

const applicationsForPropertySQL = `
SELECT id, property_id, tenant_id, status, message, created_at
FROM applications
WHERE property_id = ?
ORDER BY created_at DESC, id
`

const applicationsForTenantSQL = `
SELECT id, property_id, tenant_id, status, message, created_at
FROM applications
WHERE tenant_id = ?
ORDER BY created_at DESC, id
`

const countApplicationsSQL = `SELECT COUNT(*) FROM applications`

// -----------------------------------------------------------------------------
// USERS
// -----------------------------------------------------------------------------

const getUserSQL = `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE id = ?
`

const listUsersSQL = `
SELECT id, name, email, password_hash, role, created_at
FROM users
ORDER BY created_at, id
`

const deleteUserSQL = `DELETE FROM users WHERE id = ?`

const countUsersByRoleSQL = `SELECT COUNT(*) FROM users WHERE role = ?`

const insertUserSQL = `
INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// PAYMENTS
// -----------------------------------------------------------------------------

const insertPaymentSQL = `
INSERT INTO payments (id, booking_id, property_id, user_id, amount, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const listPaymentsSQL = `
SELECT id, booking_id, property_id, user_id, amount, status, created_at
FROM payments
ORDER BY created_at DESC, id
`

const paymentsForUserSQL = `
SELECT id, booking_id, property_id, user_id, amount, status, created_at
FROM payments
WHERE user_id = ?
ORDER BY created_at DESC, id
`

const paymentsForLandlordSQL = `
SELECT pay.id, pay.booking_id, pay.property_id, pay.user_id, pay.amount, pay.status, pay.created_at
FROM payments pay
JOIN properties p ON p.id = pay.property_id
WHERE p.created_by = ?
ORDER BY pay.created_at DESC, pay.id
`

const totalPaymentsSQL = `SELECT COALESCE(SUM(amount), 0) FROM payments`

// -----------------------------------------------------------------------------
// MESSAGES
// -----------------------------------------------------------------------------

const insertMessageSQL = `
INSERT INTO messages (id, sender_id, receiver_id, property_id, content, sent_at)
VALUES (?, ?, ?, ?, ?, ?)
`

const messagesForUserSQL = `
SELECT id, sender_id, receiver_id, property_id, content, sent_at
FROM messages
WHERE sender_id = ? OR receiver_id = ?
ORDER BY sent_at DESC, id
`
