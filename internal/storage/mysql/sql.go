package mysql

const insertHotelSQL = `
INSERT INTO hotel (name, address, city, phone)
VALUES (?, ?, ?, ?)
`

const updateHotelSQL = `
UPDATE hotel
SET name = ?, address = ?, city = ?, phone = ?
WHERE id = ?
`

const deleteHotelSQL = `DELETE FROM hotel WHERE id = ?`

const listHotelsSQL = `
SELECT id, name, address, city, phone
FROM hotel
ORDER BY name, id
`

const getHotelSQL = `
SELECT id, name, address, city, phone
FROM hotel
WHERE id = ?
`

const hotelExistsSQL = `SELECT 1 FROM hotel WHERE id = ?`

const insertRoomSQL = `
INSERT INTO room (hotel_id, number, type, price)
VALUES (?, ?, ?, ?)
`

const updateRoomSQL = `
UPDATE room
SET hotel_id = ?, number = ?, type = ?, price = ?
WHERE id = ?
`

const listRoomsSQL = `
SELECT id, hotel_id, number, type, price
FROM room
ORDER BY number, id
`

const getRoomSQL = `
SELECT id, hotel_id, number, type, price
FROM room
WHERE id = ?
`

const listRoomsByHotelSQL = `
SELECT id, hotel_id, number, type, price
FROM room
WHERE hotel_id = ?
ORDER BY number, id
`

const roomExistsSQL = `SELECT 1 FROM room WHERE id = ?`
