package handlers

// HandlerBundle groups the console's handlers for route registration.
type HandlerBundle struct {
	Schedule *ScheduleHandler
	Booking  *BookingHandler
	Customer *CustomerHandler
	Staff    *StaffHandler
	Invoice  *InvoiceHandler
}
