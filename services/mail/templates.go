package mail

import (
	"fmt"
	"time"

	"wirehaul/models"
)

const tripDateLayout = "Mon, 02 Jan 2006 15:04"

func formatDate(t time.Time) string {
	return t.Format(tripDateLayout)
}

func bookingHTML(p models.BookingMailPayload) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 40px 0;">
        <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 10px; overflow: hidden;">
          <div style="background-color: #0A1F5C; padding: 20px; text-align: center; color: #ffffff;">
            <h2 style="margin: 0;">New Trip Booking Received!</h2>
          </div>
          <div style="padding: 30px; color: #333;">
            <p>Hi %s,</p>
            <p>You have received a new trip booking request from %s with the following details:</p>
            <ul>
              <li><strong>Pickup Location:</strong> %s</li>
              <li><strong>Destination:</strong> %s</li>
              <li><strong>Trip Date &amp; Time:</strong> %s</li>
              <li><strong>Price:</strong> &#8358;%.2f</li>
            </ul>
            <p>Please review the booking and take appropriate action in your dashboard.</p>
          </div>
        </div>
      </div>`,
		p.DriverName, p.BookerName, p.Pickup, p.Destination, formatDate(p.TripDate), p.Price)
}

func acceptedHTML(p models.TripDecisionMailPayload) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 40px 0;">
        <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 10px; overflow: hidden;">
          <div style="background-color: #0A1F5C; padding: 20px; text-align: center; color: #ffffff;">
            <h2 style="margin: 0;">Your Trip Has Been Accepted</h2>
          </div>
          <div style="padding: 30px; color: #333;">
            <p>Good news! %s has accepted your trip request.</p>
            <ul>
              <li><strong>Pickup Location:</strong> %s</li>
              <li><strong>Destination:</strong> %s</li>
              <li><strong>Trip Date &amp; Time:</strong> %s</li>
              <li><strong>Driver Phone:</strong> %s</li>
            </ul>
            <p>You can follow your trip with the tracking id shown in the app.</p>
          </div>
        </div>
      </div>`,
		p.DriverName, p.Pickup, p.Destination, formatDate(p.TripDate), p.DriverPhone)
}

func rejectedHTML(p models.TripDecisionMailPayload) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 40px 0;">
        <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 10px; overflow: hidden;">
          <div style="background-color: #0A1F5C; padding: 20px; text-align: center; color: #ffffff;">
            <h2 style="margin: 0;">Update On Your Trip Request</h2>
          </div>
          <div style="padding: 30px; color: #333;">
            <p>Unfortunately %s was unable to take your trip.</p>
            <ul>
              <li><strong>Pickup Location:</strong> %s</li>
              <li><strong>Destination:</strong> %s</li>
              <li><strong>Trip Date &amp; Time:</strong> %s</li>
            </ul>
            <p>You can book another available driver at any time.</p>
          </div>
        </div>
      </div>`,
		p.DriverName, p.Pickup, p.Destination, formatDate(p.TripDate))
}
